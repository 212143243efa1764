package model

import "strings"

// ResourceType is the closed tag distinguishing the three deployable entity
// kinds. It is never inferred from payload shape, only assigned by the
// collection a record came from.
type ResourceType string

const (
	ResourceTypeApplication ResourceType = "application"
	ResourceTypeService     ResourceType = "service"
	ResourceTypeDatabase    ResourceType = "database"
)

func ParseResourceType(s string) (ResourceType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application", "app":
		return ResourceTypeApplication, true
	case "service":
		return ResourceTypeService, true
	case "database", "db":
		return ResourceTypeDatabase, true
	default:
		return "", false
	}
}

// Application is a git-backed deployable unit.
type Application struct {
	ID              FlexID `json:"id"`
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	FQDN            string `json:"fqdn,omitempty"`
	GitRepository   string `json:"git_repository,omitempty"`
	GitBranch       string `json:"git_branch,omitempty"`
	BuildPack       string `json:"build_pack,omitempty"`
	Status          string `json:"status,omitempty"`
	EnvironmentID   FlexID `json:"environment_id,omitempty"`
	EnvironmentUUID string `json:"environment_uuid,omitempty"`
}

// Service is a one-click or compose-based service stack.
type Service struct {
	ID              FlexID `json:"id"`
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ServiceType     string `json:"service_type,omitempty"`
	Status          string `json:"status,omitempty"`
	EnvironmentID   FlexID `json:"environment_id,omitempty"`
	EnvironmentUUID string `json:"environment_uuid,omitempty"`
}

// Database is a managed database instance.
type Database struct {
	ID              FlexID `json:"id"`
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Image           string `json:"image,omitempty"`
	Status          string `json:"status,omitempty"`
	EnvironmentID   FlexID `json:"environment_id,omitempty"`
	EnvironmentUUID string `json:"environment_uuid,omitempty"`
}

// ResourceItem is the unified view of an application, service or database.
// EnvironmentID is always present as a string, possibly empty, so lookup map
// access stays total.
type ResourceItem struct {
	ID            string       `json:"id"`
	UUID          string       `json:"uuid,omitempty"`
	Type          ResourceType `json:"type"`
	Name          string       `json:"name"`
	Subtitle      string       `json:"subtitle,omitempty"`
	EnvironmentID string       `json:"environment_id"`
	Repo          string       `json:"repo,omitempty"`
	Kind          string       `json:"kind,omitempty"`
	URL           string       `json:"url,omitempty"`
	Status        string       `json:"status,omitempty"`
}
