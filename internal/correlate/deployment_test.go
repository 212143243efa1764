package correlate

import (
	"encoding/json"
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListShapes(t *testing.T) {
	inner := `[{"deployment_uuid":"d1","status":"running"}]`
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare array", inner, 1},
		{"rows", `{"rows":` + inner + `}`, 1},
		{"data", `{"data":` + inner + `}`, 1},
		{"deployments", `{"deployments":` + inner + `}`, 1},
		{"nested data.rows", `{"data":{"rows":` + inner + `}}`, 1},
		{"nested data.data", `{"data":{"data":` + inner + `}}`, 1},
		{"empty object", `{}`, 0},
		{"null", `null`, 0},
		{"scalar", `"oops"`, 0},
		{"number", `42`, 0},
		{"unrelated keys", `{"total":3}`, 0},
		{"malformed", `{"data":`, 0},
		{"empty input", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeList[model.Deployment](json.RawMessage(tt.raw))
			require.NotNil(t, got)
			require.Len(t, got, tt.want)
			if tt.want == 1 {
				require.Equal(t, "d1", got[0].DeploymentUUID)
			}
		})
	}
}

func TestNormalizeListRoundTripsBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"deployment_uuid":"d1"},{"deployment_uuid":"d2"}]`)
	got := NormalizeList[model.Deployment](raw)
	require.Len(t, got, 2)
	require.Equal(t, "d1", got[0].DeploymentUUID)
	require.Equal(t, "d2", got[1].DeploymentUUID)
}

func TestNormalizeListPriorityOrder(t *testing.T) {
	// rows wins over data when both are present.
	raw := json.RawMessage(`{"rows":[{"deployment_uuid":"from-rows"}],"data":[{"deployment_uuid":"from-data"}]}`)
	got := NormalizeList[model.Deployment](raw)
	require.Len(t, got, 1)
	require.Equal(t, "from-rows", got[0].DeploymentUUID)
}

func TestBuildAppEnvMap(t *testing.T) {
	require := require.New(t)

	apps := []model.Application{
		{ID: model.FlexID("100"), UUID: "a1", EnvironmentID: model.FlexID("10")},
		{UUID: "a2", EnvironmentUUID: "e2"},
		{UUID: "a3"}, // no environment linkage, skipped
	}
	m := BuildAppEnvMap(apps)

	require.Equal("10", m["100"])
	require.Equal("10", m["a1"])
	require.Equal("e2", m["a2"])
	require.NotContains(m, "a3")
}

func TestDeploymentEnvironment(t *testing.T) {
	appEnv := map[string]string{"a1": "10", "src1": "20"}

	tests := []struct {
		name     string
		d        model.Deployment
		expected string
	}{
		{"source app uuid wins", model.Deployment{SourceAppUUID: "src1", ApplicationUUID: "a1"}, "20"},
		{"application uuid", model.Deployment{ApplicationUUID: "a1"}, "10"},
		{"application id fallback", model.Deployment{ApplicationID: model.FlexID("a1")}, "10"},
		{"own environment id", model.Deployment{EnvironmentID: model.FlexID("30")}, "30"},
		{"own environment uuid", model.Deployment{EnvironmentUUID: "e9"}, "e9"},
		{"unknown app falls back to own fields", model.Deployment{ApplicationUUID: "missing", EnvironmentID: model.FlexID("30")}, "30"},
		{"nothing resolves", model.Deployment{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DeploymentEnvironment(tt.d, appEnv))
		})
	}
}

func TestDeploymentKey(t *testing.T) {
	require.Equal(t, "d1", DeploymentKey(model.Deployment{DeploymentUUID: "d1", ID: model.FlexID("5")}))
	require.Equal(t, "5", DeploymentKey(model.Deployment{ID: model.FlexID("5")}))
	require.Equal(t, "", DeploymentKey(model.Deployment{}))
}
