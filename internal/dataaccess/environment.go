package dataaccess

import (
	"context"

	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/rs/zerolog/log"
)

// ListProjectEnvironments returns the environments of one project, enriched
// with the project's identity. The fetch context (this project) takes
// precedence over whatever project references the payload carries.
func ListProjectEnvironments(ctx context.Context, token string, project model.Project) ([]model.ProjectEnvironment, error) {
	full, err := DescribeProject(ctx, token, correlate.NormalizeID(project.UUID))
	if err != nil {
		return nil, err
	}
	tagged := project
	tagged.Environments = full.Environments
	if tagged.Name == "" {
		tagged.Name = full.Name
	}
	return correlate.FlattenEnvironments([]model.Project{tagged}), nil
}

// ListAllEnvironments fans out over the given projects one at a time. A
// project whose environments cannot be fetched is logged and skipped so a
// single bad project does not hide the rest.
func ListAllEnvironments(ctx context.Context, token string, projects []model.Project) ([]model.ProjectEnvironment, error) {
	out := make([]model.ProjectEnvironment, 0, len(projects))
	for _, p := range projects {
		if correlate.NormalizeID(p.UUID) == "" {
			continue
		}
		envs, err := ListProjectEnvironments(ctx, token, p)
		if err != nil {
			log.Warn().Err(err).Str("project", p.Name).Msg("Skipping project environments")
			continue
		}
		out = append(out, envs...)
	}
	return out, nil
}
