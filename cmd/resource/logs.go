package resource

import (
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const logsExample = `# Open the console logs of an application in the browser
coolify-ctl resource logs vgsco4o`

var logsCmd = &cobra.Command{
	Use:          "logs [application-uuid]",
	Short:        "Open the console logs page of an application",
	Example:      logsExample,
	RunE:         runLogs,
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
}

func runLogs(cmd *cobra.Command, args []string) error {
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
	if item.Type != model.ResourceTypeApplication {
		err = errors.Errorf("%q is a %s; only applications have a console logs page", item.Name, item.Type)
		utils.PrintError(err)
		return err
	}

	url := correlate.ResolveLogsURL(instanceURL, item, snapshot.Lookups)
	if url == "" {
		err = errors.Errorf("cannot resolve a logs URL for %q: project or environment identity is missing", item.Name)
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
