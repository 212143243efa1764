package correlate

import (
	"strings"

	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// UnnamedProject is the display name for projects without one.
const UnnamedProject = "Unnamed Project"

// Lookups holds the derived environment indexes every other component keys
// off. Each map is keyed redundantly by both the environment's numeric id (as
// a string) and its uuid, because different resource types reference
// environments by different id flavors.
type Lookups struct {
	// EnvToProject maps an environment id/uuid to its owning project id.
	EnvToProject map[string]string
	// EnvName maps an environment id/uuid to its display name.
	EnvName map[string]string
	// Env maps an environment id/uuid to the full enriched record.
	Env map[string]model.ProjectEnvironment
	// EnvIDsByName maps a display name to every id/uuid registered under it,
	// across projects. Duplicate names in different projects aggregate.
	EnvIDsByName map[string][]string
}

// FlattenEnvironments walks the nested project→environment trees into a flat
// sequence, attaching the owning project's identity to each environment. The
// project a tree was fetched under takes precedence over the environment's
// own project reference fields.
func FlattenEnvironments(projects []model.Project) []model.ProjectEnvironment {
	out := make([]model.ProjectEnvironment, 0, len(projects))
	for _, p := range projects {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = UnnamedProject
		}
		for _, e := range p.Environments {
			out = append(out, model.ProjectEnvironment{
				ID:          NormalizeID(e.ID),
				UUID:        NormalizeID(e.UUID),
				Name:        e.Name,
				ProjectID:   FirstID(p.ID, e.ProjectID, e.ProjectUUID),
				ProjectUUID: NormalizeID(p.UUID),
				ProjectName: name,
			})
		}
	}
	return out
}

// envKeys returns the identifiers an environment can be looked up by.
// Environments with neither an id nor a uuid produce no keys and are dropped
// by every builder.
func envKeys(e model.ProjectEnvironment) []string {
	keys := make([]string, 0, 2)
	if e.ID != "" {
		keys = append(keys, e.ID)
	}
	if e.UUID != "" {
		keys = append(keys, e.UUID)
	}
	return keys
}

// BuildEnvToProjectMap indexes environment id/uuid to project id. On key
// collision the later entry wins; this is a documented last-writer-wins
// policy, not conflict detection.
func BuildEnvToProjectMap(envs []model.ProjectEnvironment) map[string]string {
	m := make(map[string]string, len(envs)*2)
	for _, e := range envs {
		for _, k := range envKeys(e) {
			m[k] = e.ProjectID
		}
	}
	return m
}

// BuildEnvNameMap indexes environment id/uuid to display name.
func BuildEnvNameMap(envs []model.ProjectEnvironment) map[string]string {
	m := make(map[string]string, len(envs)*2)
	for _, e := range envs {
		for _, k := range envKeys(e) {
			m[k] = e.Name
		}
	}
	return m
}

// BuildEnvLookup indexes environment id/uuid to the full enriched record, so
// a lookup by either flavor of the same environment's identity returns the
// same record.
func BuildEnvLookup(envs []model.ProjectEnvironment) map[string]model.ProjectEnvironment {
	m := make(map[string]model.ProjectEnvironment, len(envs)*2)
	for _, e := range envs {
		for _, k := range envKeys(e) {
			m[k] = e
		}
	}
	return m
}

// BuildEnvNameToIDsMap indexes display name to every id/uuid carrying that
// name. Unlike the keyed maps this one aggregates instead of overwriting,
// which is what makes filtering by a human-readable environment name work
// when several projects share it.
func BuildEnvNameToIDsMap(envs []model.ProjectEnvironment) map[string][]string {
	m := make(map[string][]string, len(envs))
	for _, e := range envs {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		m[name] = append(m[name], envKeys(e)...)
	}
	return m
}

// BuildLookups runs all four builders over one flattened snapshot.
func BuildLookups(envs []model.ProjectEnvironment) Lookups {
	return Lookups{
		EnvToProject: BuildEnvToProjectMap(envs),
		EnvName:      BuildEnvNameMap(envs),
		Env:          BuildEnvLookup(envs),
		EnvIDsByName: BuildEnvNameToIDsMap(envs),
	}
}
