package deployment

import (
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const openExample = `# Open the detail page of one deployment of an application
coolify-ctl deployment open vgsco4o a1b2c3d4`

var openCmd = &cobra.Command{
	Use:          "open [application-uuid] [deployment-uuid]",
	Short:        "Open the detail page of a deployment",
	Example:      openExample,
	RunE:         runOpen,
	SilenceUsage: true,
	Args:         cobra.ExactArgs(2),
}

func runOpen(cmd *cobra.Command, args []string) error {
	instanceURL, token, err := common.GetAuth()
	if err != nil {
		utils.PrintError(err)
		return err
	}

	snapshot, err := common.LoadSnapshot(cmd.Context(), token)
	if err != nil {
		utils.PrintError(err)
		return err
	}

	item, ok := snapshot.FindResource(args[0])
	if !ok {
		err = errors.Errorf("no application found for %q", args[0])
		utils.PrintError(err)
		return err
	}

	env, ok := snapshot.Lookups.Env[item.EnvironmentID]
	if !ok {
		err = errors.Errorf("cannot resolve the environment of %q", item.Name)
		utils.PrintError(err)
		return err
	}

	deploymentUUID := correlate.NormalizeID(args[1])
	url := correlate.DeploymentURL(instanceURL, env.ProjectUUID, env.UUID, item.UUID, deploymentUUID)
	if url == "" {
		err = errors.Errorf("cannot resolve a deployment URL for %q: an identifier is missing", item.Name)
		utils.PrintError(err)
		return err
	}

	if err = browser.OpenURL(url); err != nil {
		utils.PrintError(err)
		return err
	}
	utils.PrintSuccess("Opened " + url)
	return nil
}
