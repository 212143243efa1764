package model

// Deployment is a single build/release attempt of an application. The
// deployments endpoint is the loosest part of the API: identity comes from
// deployment_uuid with id as fallback, linkage fields may all be missing, and
// status is an open platform-defined vocabulary.
type Deployment struct {
	ID              FlexID `json:"id,omitempty"`
	DeploymentUUID  string `json:"deployment_uuid,omitempty"`
	ApplicationID   FlexID `json:"application_id,omitempty"`
	ApplicationUUID string `json:"application_uuid,omitempty"`
	SourceAppUUID   string `json:"source_app_uuid,omitempty"`
	ApplicationName string `json:"application_name,omitempty"`
	EnvironmentID   FlexID `json:"environment_id,omitempty"`
	EnvironmentUUID string `json:"environment_uuid,omitempty"`
	Status          string `json:"status,omitempty"`
	Commit          string `json:"commit,omitempty"`
	CommitMessage   string `json:"commit_message,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
