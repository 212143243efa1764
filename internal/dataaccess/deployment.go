package dataaccess

import (
	"context"
	"net/url"

	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/rs/zerolog/log"
)

// maxRecentDeployments caps how many records ListRecentDeployments collects
// across all applications.
const maxRecentDeployments = 50

// ListApplicationDeployments returns the deployment history of one
// application, newest first as served by the API. The endpoint returns a
// different envelope depending on the instance version, hence the shape
// normalizer on the raw body.
func ListApplicationDeployments(ctx context.Context, token, applicationUUID string) ([]model.Deployment, error) {
	raw, err := getRaw(ctx, token, "/deployments/applications/"+url.PathEscape(applicationUUID), nil)
	if err != nil {
		return nil, err
	}
	return correlate.NormalizeList[model.Deployment](raw), nil
}

// ListRecentDeployments walks applications one at a time, deliberately
// serialized and capped at maxRecentDeployments total records to keep
// fan-out bounded. Applications whose history cannot be fetched are logged
// and skipped.
func ListRecentDeployments(ctx context.Context, token string, apps []model.Application) ([]model.Deployment, error) {
	out := make([]model.Deployment, 0, maxRecentDeployments)
	for _, a := range apps {
		if len(out) >= maxRecentDeployments {
			break
		}
		uuid := correlate.NormalizeID(a.UUID)
		if uuid == "" {
			continue
		}
		deployments, err := ListApplicationDeployments(ctx, token, uuid)
		if err != nil {
			log.Warn().Err(err).Str("application", a.Name).Msg("Skipping application deployments")
			continue
		}
		for _, d := range deployments {
			if d.ApplicationName == "" {
				d.ApplicationName = a.Name
			}
			out = append(out, d)
			if len(out) >= maxRecentDeployments {
				break
			}
		}
	}
	return out, nil
}
