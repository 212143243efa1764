package correlate

import (
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

func TestResourceURL(t *testing.T) {
	require := require.New(t)

	for _, typ := range []model.ResourceType{
		model.ResourceTypeApplication,
		model.ResourceTypeService,
		model.ResourceTypeDatabase,
	} {
		got := ResourceURL("https://instance", "p1", "e1", "r1", typ)
		require.Equal("https://instance/project/p1/environment/e1/"+string(typ)+"/r1", got)

		// All-or-nothing: any missing UUID yields no URL at all.
		require.Empty(ResourceURL("https://instance", "", "e1", "r1", typ))
		require.Empty(ResourceURL("https://instance", "p1", "", "r1", typ))
		require.Empty(ResourceURL("https://instance", "p1", "e1", "", typ))
		require.Empty(ResourceURL("", "p1", "e1", "r1", typ))
	}
}

func TestResourceURLTrimsTrailingSlashes(t *testing.T) {
	got := ResourceURL("https://instance///", "p1", "e1", "r1", model.ResourceTypeApplication)
	require.Equal(t, "https://instance/project/p1/environment/e1/application/r1", got)
}

func TestEnvironmentURL(t *testing.T) {
	require.Equal(t, "https://instance/project/p1/environment/e1", EnvironmentURL("https://instance/", "p1", "e1"))
	require.Empty(t, EnvironmentURL("https://instance", "p1", ""))
	require.Empty(t, EnvironmentURL("https://instance", "", "e1"))
}

func TestLogsURL(t *testing.T) {
	require.Equal(t, "https://instance/project/p1/environment/e1/application/a1/logs", LogsURL("https://instance", "p1", "e1", "a1"))
	require.Empty(t, LogsURL("https://instance", "p1", "e1", ""))
}

func TestDeploymentURL(t *testing.T) {
	require.Equal(t, "https://instance/project/p1/environment/e1/application/a1/deployment/d1", DeploymentURL("https://instance", "p1", "e1", "a1", "d1"))
	require.Empty(t, DeploymentURL("https://instance", "p1", "e1", "a1", ""))
	require.Empty(t, DeploymentURL("https://instance", "", "e1", "a1", "d1"))
}

func TestResolveResourceURL(t *testing.T) {
	require := require.New(t)

	lk := BuildLookups([]model.ProjectEnvironment{
		{ID: "10", UUID: "e1", Name: "production", ProjectID: "1", ProjectUUID: "p1", ProjectName: "Demo"},
	})
	item := model.ResourceItem{UUID: "a1", Type: model.ResourceTypeApplication, Name: "web", EnvironmentID: "10"}

	require.Equal("https://instance/project/p1/environment/e1/application/a1", ResolveResourceURL("https://instance", item, lk))

	// Unknown environment resolves to nothing.
	item.EnvironmentID = "999"
	require.Empty(ResolveResourceURL("https://instance", item, lk))
}

func TestResolveLogsURL(t *testing.T) {
	require := require.New(t)

	lk := BuildLookups([]model.ProjectEnvironment{
		{ID: "10", UUID: "e1", Name: "production", ProjectID: "1", ProjectUUID: "p1", ProjectName: "Demo"},
	})
	app := model.ResourceItem{UUID: "a1", Type: model.ResourceTypeApplication, EnvironmentID: "10"}
	db := model.ResourceItem{UUID: "d1", Type: model.ResourceTypeDatabase, EnvironmentID: "10"}

	require.Equal("https://instance/project/p1/environment/e1/application/a1/logs", ResolveLogsURL("https://instance", app, lk))
	require.Empty(ResolveLogsURL("https://instance", db, lk))
}
