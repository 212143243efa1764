package dataaccess

import (
	"context"

	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
)

func ListApplications(ctx context.Context, token string) ([]model.Application, error) {
	raw, err := getRaw(ctx, token, "/applications", nil)
	if err != nil {
		return nil, err
	}
	return correlate.NormalizeList[model.Application](raw), nil
}

func ListServices(ctx context.Context, token string) ([]model.Service, error) {
	raw, err := getRaw(ctx, token, "/services", nil)
	if err != nil {
		return nil, err
	}
	return correlate.NormalizeList[model.Service](raw), nil
}

func ListDatabases(ctx context.Context, token string) ([]model.Database, error) {
	raw, err := getRaw(ctx, token, "/databases", nil)
	if err != nil {
		return nil, err
	}
	return correlate.NormalizeList[model.Database](raw), nil
}
