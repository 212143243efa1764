package resource

import (
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const openExample = `# Open the dashboard page of a resource in the browser
coolify-ctl resource open vgsco4o`

var openCmd = &cobra.Command{
	Use:          "open [resource-uuid]",
	Short:        "Open the dashboard page of a resource",
	Example:      openExample,
	RunE:         runOpen,
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
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
		err = errors.Errorf("no resource found for %q", args[0])
		utils.PrintError(err)
		return err
	}

	url := correlate.ResolveResourceURL(instanceURL, item, snapshot.Lookups)
	if url == "" {
		err = errors.Errorf("cannot resolve a dashboard URL for %q: project or environment identity is missing", item.Name)
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
