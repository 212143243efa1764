package correlate

import (
	"strings"

	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// BuildResources merges the three source collections into one unified slice,
// one ResourceItem per record, tagged with its originating type. Pure
// mapping: absent optional fields degrade to empty values, nothing errors.
func BuildResources(apps []model.Application, services []model.Service, dbs []model.Database) []model.ResourceItem {
	out := make([]model.ResourceItem, 0, len(apps)+len(services)+len(dbs))
	for _, a := range apps {
		out = append(out, unifyApplication(a))
	}
	for _, s := range services {
		out = append(out, unifyService(s))
	}
	for _, d := range dbs {
		out = append(out, unifyDatabase(d))
	}
	return out
}

func unifyApplication(a model.Application) model.ResourceItem {
	primary := PrimaryURL(a.FQDN)
	return model.ResourceItem{
		ID:            FirstID(a.ID, a.UUID),
		UUID:          NormalizeID(a.UUID),
		Type:          model.ResourceTypeApplication,
		Name:          displayName(a.Name, "Unnamed Application"),
		Subtitle:      joinNonEmpty(" · ", strings.TrimSpace(a.GitBranch), primary),
		EnvironmentID: FirstID(a.EnvironmentID, a.EnvironmentUUID),
		Repo:          strings.TrimSpace(a.GitRepository),
		Kind:          strings.TrimSpace(a.BuildPack),
		URL:           primary,
		Status:        a.Status,
	}
}

func unifyService(s model.Service) model.ResourceItem {
	return model.ResourceItem{
		ID:            FirstID(s.ID, s.UUID),
		UUID:          NormalizeID(s.UUID),
		Type:          model.ResourceTypeService,
		Name:          displayName(s.Name, "Unnamed Service"),
		Subtitle:      strings.TrimSpace(s.Description),
		EnvironmentID: FirstID(s.EnvironmentID, s.EnvironmentUUID),
		Kind:          strings.TrimSpace(s.ServiceType),
		Status:        s.Status,
	}
}

func unifyDatabase(d model.Database) model.ResourceItem {
	return model.ResourceItem{
		ID:            FirstID(d.ID, d.UUID),
		UUID:          NormalizeID(d.UUID),
		Type:          model.ResourceTypeDatabase,
		Name:          displayName(d.Name, "Unnamed Database"),
		Subtitle:      strings.TrimSpace(d.Description),
		EnvironmentID: FirstID(d.EnvironmentID, d.EnvironmentUUID),
		Kind:          strings.TrimSpace(d.Image),
		Status:        d.Status,
	}
}

// PrimaryURL derives a browsable URL from an application's fqdn field, which
// may hold a comma-separated list of domains: take the first token, trim it,
// and prefix https:// unless a scheme is already declared. Returns "" when
// no domain is configured.
func PrimaryURL(fqdn string) string {
	first, _, _ := strings.Cut(fqdn, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return ""
	}
	if strings.Contains(first, "://") {
		return first
	}
	return "https://" + first
}

func displayName(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
