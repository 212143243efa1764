package deployment

import (
	"testing"

	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/stretchr/testify/require"
)

func TestDeploymentSubcommandsRegistered(t *testing.T) {
	require := require.New(t)

	actualCommands := make([]string, 0)
	for _, cmd := range Cmd.Commands() {
		actualCommands = append(actualCommands, cmd.Name())
	}

	require.Contains(actualCommands, "list")
	require.Contains(actualCommands, "open")
}

func TestListCommandFlags(t *testing.T) {
	require := require.New(t)

	for _, flagName := range []string{"application", "search"} {
		flag := listCmd.Flags().Lookup(flagName)
		require.NotNil(flag, "Expected flag '%s' not found", flagName)
	}
}

func TestSortNewestFirst(t *testing.T) {
	require := require.New(t)

	deployments := []model.Deployment{
		{DeploymentUUID: "old", CreatedAt: "2024-01-01T00:00:00Z"},
		{DeploymentUUID: "undated"},
		{DeploymentUUID: "new", CreatedAt: "2024-06-01T00:00:00Z"},
	}
	sortNewestFirst(deployments)

	require.Equal("new", deployments[0].DeploymentUUID)
	require.Equal("old", deployments[1].DeploymentUUID)
	// Records without a timestamp sink to the end.
	require.Equal("undated", deployments[2].DeploymentUUID)
}
