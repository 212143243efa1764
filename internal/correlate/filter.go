package correlate

import (
	"strings"
	"unicode"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/pkg/errors"
)

// SelectorKind enumerates the filter axes. Exactly one selector is active at
// a time; combinable filters are deliberately not offered.
type SelectorKind int

const (
	SelectAll SelectorKind = iota
	SelectProject
	SelectEnvironment
	SelectType
	SelectActiveStatus
)

// Selector is the single active filter criterion.
type Selector struct {
	Kind SelectorKind
	Arg  string
}

// ParseSelector parses the textual selector forms: "all", "project:<id>",
// "env:<name>", "type:<tag>" and "status:active". An empty string means all.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return Selector{Kind: SelectAll}, nil
	}
	key, arg, ok := strings.Cut(s, ":")
	if !ok {
		return Selector{}, errors.Errorf("invalid filter %q: expected all, project:<id>, env:<name>, type:<tag> or status:active", s)
	}
	switch key {
	case "project":
		id := NormalizeID(arg)
		if id == "" {
			return Selector{}, errors.New("project filter requires an id")
		}
		return Selector{Kind: SelectProject, Arg: id}, nil
	case "env":
		name := strings.TrimSpace(arg)
		if name == "" {
			return Selector{}, errors.New("env filter requires an environment name")
		}
		return Selector{Kind: SelectEnvironment, Arg: name}, nil
	case "type":
		typ, ok := model.ParseResourceType(arg)
		if !ok {
			return Selector{}, errors.Errorf("unknown resource type %q", arg)
		}
		return Selector{Kind: SelectType, Arg: string(typ)}, nil
	case "status":
		if strings.TrimSpace(arg) != "active" {
			return Selector{}, errors.Errorf("unsupported status filter %q: only status:active is supported", arg)
		}
		return Selector{Kind: SelectActiveStatus}, nil
	default:
		return Selector{}, errors.Errorf("unknown filter key %q", key)
	}
}

// activeStatuses is the fixed vocabulary of "something is happening" states.
var activeStatuses = map[string]struct{}{
	"running":     {},
	"queued":      {},
	"pending":     {},
	"in_progress": {},
	"deploying":   {},
	"building":    {},
}

// NormalizeStatus lowercases a raw status string and collapses runs of
// whitespace and hyphens to a single underscore, so "In Progress" and
// "in-progress" compare equal.
func NormalizeStatus(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}

// IsActiveStatus reports whether a raw status normalizes into the active
// vocabulary.
func IsActiveStatus(s string) bool {
	_, ok := activeStatuses[NormalizeStatus(s)]
	return ok
}

// FilterResources evaluates a single selector against the unified set in one
// pass. SelectAll is the identity.
func FilterResources(items []model.ResourceItem, sel Selector, lk Lookups) []model.ResourceItem {
	if sel.Kind == SelectAll {
		return items
	}
	out := make([]model.ResourceItem, 0, len(items))
	for _, it := range items {
		if matchResource(it, sel, lk) {
			out = append(out, it)
		}
	}
	return out
}

func matchResource(it model.ResourceItem, sel Selector, lk Lookups) bool {
	switch sel.Kind {
	case SelectProject:
		return it.EnvironmentID != "" && lk.EnvToProject[it.EnvironmentID] == sel.Arg
	case SelectEnvironment:
		for _, id := range lk.EnvIDsByName[sel.Arg] {
			if id == it.EnvironmentID {
				return true
			}
		}
		return false
	case SelectType:
		return string(it.Type) == sel.Arg
	case SelectActiveStatus:
		return IsActiveStatus(it.Status)
	default:
		return true
	}
}

// SearchResources filters by case-insensitive substring over the fields a
// person scans in the list view: name, subtitle, repository, kind and type.
// Blank queries return the input unchanged.
func SearchResources(items []model.ResourceItem, query string) []model.ResourceItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]model.ResourceItem, 0, len(items))
	for _, it := range items {
		hay := strings.ToLower(strings.Join([]string{it.Name, it.Subtitle, it.Repo, it.Kind, string(it.Type)}, "\n"))
		if strings.Contains(hay, q) {
			out = append(out, it)
		}
	}
	return out
}

// SearchDeployments is the deployment counterpart of SearchResources,
// matching against application name, commit message, commit and status.
func SearchDeployments(items []model.Deployment, query string) []model.Deployment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]model.Deployment, 0, len(items))
	for _, d := range items {
		hay := strings.ToLower(strings.Join([]string{d.ApplicationName, d.CommitMessage, d.Commit, d.Status}, "\n"))
		if strings.Contains(hay, q) {
			out = append(out, d)
		}
	}
	return out
}
