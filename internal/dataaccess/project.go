package dataaccess

import (
	"context"

	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// ListProjects returns every project visible to the token. The list endpoint
// is one of the endpoints that wraps its payload inconsistently, so the raw
// body goes through the shape normalizer.
func ListProjects(ctx context.Context, token string) ([]model.Project, error) {
	raw, err := getRaw(ctx, token, "/projects", nil)
	if err != nil {
		return nil, err
	}
	return correlate.NormalizeList[model.Project](raw), nil
}

// DescribeProject returns one project with its environments populated.
func DescribeProject(ctx context.Context, token, projectUUID string) (*model.Project, error) {
	var project model.Project
	if err := getJSON(ctx, token, "/projects/"+projectUUID, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
