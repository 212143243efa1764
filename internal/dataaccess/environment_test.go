package dataaccess

import (
	"context"
	"net/http"
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

func TestListAllEnvironmentsTagsAndSkips(t *testing.T) {
	require := require.New(t)

	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/projects/p1":
			_, _ = w.Write([]byte(`{"id":1,"uuid":"p1","name":"Demo","environments":[{"id":10,"uuid":"e1","name":"production"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	projects := []model.Project{
		{ID: model.FlexID("1"), UUID: "p1", Name: "Demo"},
		{ID: model.FlexID("2"), UUID: "p2", Name: "Broken"},
		{Name: "no uuid"},
	}

	envs, err := ListAllEnvironments(context.Background(), testToken, projects)
	require.NoError(err)
	require.Len(envs, 1)
	require.Equal("production", envs[0].Name)
	require.Equal("1", envs[0].ProjectID)
	require.Equal("p1", envs[0].ProjectUUID)
	require.Equal("Demo", envs[0].ProjectName)
}
