package common

import (
	"context"

	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/dataaccess"
	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// Snapshot is one fetch of every collection the correlation engine joins.
// Lookup indexes are rebuilt from scratch for each snapshot; nothing is
// patched incrementally.
type Snapshot struct {
	Projects     []model.Project
	Environments []model.ProjectEnvironment
	Applications []model.Application
	Services     []model.Service
	Databases    []model.Database
	Resources    []model.ResourceItem
	Lookups      correlate.Lookups
}

// LoadSnapshot fetches projects, per-project environments and the three
// resource collections, then runs the relationship builder and unifier.
func LoadSnapshot(ctx context.Context, token string) (*Snapshot, error) {
	projects, err := dataaccess.ListProjects(ctx, token)
	if err != nil {
		return nil, err
	}
	envs, err := dataaccess.ListAllEnvironments(ctx, token, projects)
	if err != nil {
		return nil, err
	}
	apps, err := dataaccess.ListApplications(ctx, token)
	if err != nil {
		return nil, err
	}
	services, err := dataaccess.ListServices(ctx, token)
	if err != nil {
		return nil, err
	}
	databases, err := dataaccess.ListDatabases(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Projects:     projects,
		Environments: envs,
		Applications: apps,
		Services:     services,
		Databases:    databases,
		Resources:    correlate.BuildResources(apps, services, databases),
		Lookups:      correlate.BuildLookups(envs),
	}, nil
}

// FindResource locates a unified resource by uuid, falling back to id.
func (s *Snapshot) FindResource(idOrUUID string) (model.ResourceItem, bool) {
	key := correlate.NormalizeID(idOrUUID)
	if key == "" {
		return model.ResourceItem{}, false
	}
	for _, it := range s.Resources {
		if it.UUID == key || it.ID == key {
			return it, true
		}
	}
	return model.ResourceItem{}, false
}
