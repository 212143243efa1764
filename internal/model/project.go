package model

// Project is a top-level grouping of environments on the platform. Snapshots
// are immutable per fetch; nothing in this repository mutates them locally.
type Project struct {
	ID           FlexID        `json:"id"`
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Environments []Environment `json:"environments,omitempty"`
}

// Environment is a deployment target scoped to one project. The project
// reference fields are optional on the wire; when the environment was fetched
// under a known project, that fetch context wins over the payload.
type Environment struct {
	ID          FlexID `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	ProjectID   FlexID `json:"project_id,omitempty"`
	ProjectUUID string `json:"project_uuid,omitempty"`
}

// ProjectEnvironment is an environment enriched with the identity of its
// owning project. All identifiers are in normalized string form; empty means
// absent.
type ProjectEnvironment struct {
	ID          string `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	ProjectID   string `json:"project_id"`
	ProjectUUID string `json:"project_uuid"`
	ProjectName string `json:"project_name"`
}
