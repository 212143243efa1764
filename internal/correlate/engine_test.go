package correlate

import (
	"encoding/json"
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

// End-to-end pass over the full pipeline: flatten, index, unify, filter,
// search, resolve.
func TestEngineEndToEnd(t *testing.T) {
	require := require.New(t)

	projects := []model.Project{{
		ID:   model.FlexID("1"),
		UUID: "p1",
		Name: "Demo",
		Environments: []model.Environment{
			{ID: model.FlexID("10"), UUID: "e1", Name: "production"},
		},
	}}
	apps := []model.Application{{
		ID:            model.FlexID("100"),
		UUID:          "a1",
		Name:          "web",
		FQDN:          "web.example.com",
		EnvironmentID: model.FlexID("10"),
	}}

	lk := BuildLookups(FlattenEnvironments(projects))
	resources := BuildResources(apps, nil, nil)

	sel, err := ParseSelector("project:1")
	require.NoError(err)

	got := SearchResources(FilterResources(resources, sel, lk), "")
	require.Len(got, 1)
	require.Equal("web", got[0].Name)

	require.Equal("https://instance/project/p1/environment/e1/application/a1",
		ResolveResourceURL("https://instance", got[0], lk))
}

// Two environments named "staging" in different projects must both surface
// under the env selector.
func TestEngineEnvNameSpansProjects(t *testing.T) {
	require := require.New(t)

	projects := []model.Project{
		{ID: model.FlexID("1"), UUID: "p1", Name: "Alpha", Environments: []model.Environment{
			{ID: model.FlexID("10"), UUID: "e1", Name: "staging"},
		}},
		{ID: model.FlexID("2"), UUID: "p2", Name: "Beta", Environments: []model.Environment{
			{ID: model.FlexID("20"), UUID: "e2", Name: "staging"},
		}},
	}
	apps := []model.Application{
		{UUID: "a1", Name: "alpha-app", EnvironmentID: model.FlexID("10")},
		{UUID: "a2", Name: "beta-app", EnvironmentUUID: "e2"},
	}

	lk := BuildLookups(FlattenEnvironments(projects))
	resources := BuildResources(apps, nil, nil)

	sel, err := ParseSelector("env:staging")
	require.NoError(err)

	got := FilterResources(resources, sel, lk)
	require.Len(got, 2)
}

// A doubly-nested deployment payload flattens to the inner array; a raw
// string flattens to nothing.
func TestEngineDeploymentPayloadShapes(t *testing.T) {
	require := require.New(t)

	nested := json.RawMessage(`{"data":{"data":[{"deployment_uuid":"d1","status":"running","application_uuid":"a1"}]}}`)
	deployments := NormalizeList[model.Deployment](nested)
	require.Len(deployments, 1)

	appEnv := BuildAppEnvMap([]model.Application{{UUID: "a1", EnvironmentID: model.FlexID("10")}})
	require.Equal("10", DeploymentEnvironment(deployments[0], appEnv))

	require.Empty(NormalizeList[model.Deployment](json.RawMessage(`"not a list"`)))
}
