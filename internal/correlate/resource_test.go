package correlate

import (
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPrimaryURL(t *testing.T) {
	tests := []struct {
		name     string
		fqdn     string
		expected string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"bare domain", "web.example.com", "https://web.example.com"},
		{"padded domain", " web.example.com ", "https://web.example.com"},
		{"existing scheme", "http://web.example.com", "http://web.example.com"},
		{"comma list takes first", "a.example.com,b.example.com", "https://a.example.com"},
		{"comma list with spaces", " a.example.com , b.example.com", "https://a.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, PrimaryURL(tt.fqdn))
		})
	}
}

func TestBuildResourcesApplication(t *testing.T) {
	require := require.New(t)

	items := BuildResources([]model.Application{{
		ID:            model.FlexID("100"),
		UUID:          "a1",
		Name:          "web",
		FQDN:          "web.example.com",
		GitRepository: "org/web",
		GitBranch:     "main",
		BuildPack:     "nixpacks",
		Status:        "running",
		EnvironmentID: model.FlexID("10"),
	}}, nil, nil)

	require.Len(items, 1)
	it := items[0]
	require.Equal(model.ResourceTypeApplication, it.Type)
	require.Equal("100", it.ID)
	require.Equal("a1", it.UUID)
	require.Equal("web", it.Name)
	require.Equal("main · https://web.example.com", it.Subtitle)
	require.Equal("10", it.EnvironmentID)
	require.Equal("org/web", it.Repo)
	require.Equal("nixpacks", it.Kind)
	require.Equal("https://web.example.com", it.URL)
}

func TestBuildResourcesServiceAndDatabase(t *testing.T) {
	require := require.New(t)

	items := BuildResources(nil,
		[]model.Service{{UUID: "s1", Name: "plausible", Description: "analytics", ServiceType: "plausible", EnvironmentUUID: "e1"}},
		[]model.Database{{UUID: "d1", Name: "pg", Description: "main db", Image: "postgres:16", EnvironmentID: model.FlexID("10")}},
	)

	require.Len(items, 2)
	svc, db := items[0], items[1]
	require.Equal(model.ResourceTypeService, svc.Type)
	require.Equal("analytics", svc.Subtitle)
	require.Equal("e1", svc.EnvironmentID)
	require.Equal(model.ResourceTypeDatabase, db.Type)
	require.Equal("postgres:16", db.Kind)
	require.Equal("10", db.EnvironmentID)
}

func TestBuildResourcesDefaults(t *testing.T) {
	require := require.New(t)

	items := BuildResources(
		[]model.Application{{UUID: "a1"}},
		[]model.Service{{UUID: "s1", Name: "  "}},
		[]model.Database{{UUID: "d1"}},
	)

	require.Equal("Unnamed Application", items[0].Name)
	require.Equal("Unnamed Service", items[1].Name)
	require.Equal("Unnamed Database", items[2].Name)
	// Missing optional fields degrade to empty, never error.
	require.Empty(items[0].Subtitle)
	require.Empty(items[0].URL)
	// EnvironmentID stays a string even when no environment is referenced.
	require.Equal("", items[0].EnvironmentID)
}

func TestBuildResourcesSubtitleBranchOnly(t *testing.T) {
	items := BuildResources([]model.Application{{UUID: "a1", Name: "web", GitBranch: "main"}}, nil, nil)
	require.Equal(t, "main", items[0].Subtitle)
}
