package correlate

import (
	"sort"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnassignedGroup is the bucket for resources whose project cannot be
// resolved through the environment lookup.
const UnassignedGroup = "Unassigned"

// Applications before services before databases; anything unknown sorts last.
func typeRank(t model.ResourceType) int {
	switch t {
	case model.ResourceTypeApplication:
		return 0
	case model.ResourceTypeService:
		return 1
	case model.ResourceTypeDatabase:
		return 2
	default:
		return 3
	}
}

// ProjectNameFor resolves the display name of the project owning a resource's
// environment, or "" when the environment is unknown.
func ProjectNameFor(it model.ResourceItem, lk Lookups) string {
	if env, ok := lk.Env[it.EnvironmentID]; ok {
		return env.ProjectName
	}
	return ""
}

// SortResources returns a stably sorted copy ordered by project name, then
// environment name, then type precedence, then resource name. The name keys
// use collation so non-ASCII names land where a reader expects them.
func SortResources(items []model.ResourceItem, lk Lookups) []model.ResourceItem {
	c := collate.New(language.Und)
	sorted := make([]model.ResourceItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if cmp := c.CompareString(ProjectNameFor(a, lk), ProjectNameFor(b, lk)); cmp != 0 {
			return cmp < 0
		}
		if cmp := c.CompareString(lk.EnvName[a.EnvironmentID], lk.EnvName[b.EnvironmentID]); cmp != 0 {
			return cmp < 0
		}
		if ra, rb := typeRank(a.Type), typeRank(b.Type); ra != rb {
			return ra < rb
		}
		return c.CompareString(a.Name, b.Name) < 0
	})
	return sorted
}

// ResourceGroup is one project bucket of sorted resources.
type ResourceGroup struct {
	Project string               `json:"project"`
	Items   []model.ResourceItem `json:"items"`
}

// GroupByProject buckets resources by project display name, preserving the
// input order within each bucket. Callers pass the output of SortResources
// when they want the canonical ordering.
func GroupByProject(items []model.ResourceItem, lk Lookups) []ResourceGroup {
	groups := make([]ResourceGroup, 0)
	index := make(map[string]int)
	for _, it := range items {
		name := ProjectNameFor(it, lk)
		if name == "" {
			name = UnassignedGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, ResourceGroup{Project: name})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
