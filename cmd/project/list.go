package project

import (
	"strconv"

	"github.com/chelnak/ysmrr"
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/dataaccess"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/spf13/cobra"
)

const listExample = `# List all projects
coolify-ctl project list

# List all projects as JSON
coolify-ctl project list -o json`

var listCmd = &cobra.Command{
	Use:          "list [flags]",
	Short:        "List all projects",
	Example:      listExample,
	RunE:         runList,
	SilenceUsage: true,
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		utils.PrintError(err)
		return err
	}

	_, token, err := common.GetAuth()
	if err != nil {
		utils.PrintError(err)
		return err
	}

	var sm ysmrr.SpinnerManager
	var spinner *ysmrr.Spinner
	if output != utils.OutputTypeJSON {
		sm = ysmrr.NewSpinnerManager()
		spinner = sm.AddSpinner("Listing projects...")
		utils.StartSpinnerWithCleanup(sm)
	}

	projects, err := dataaccess.ListProjects(cmd.Context(), token)
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}

	if len(projects) == 0 {
		utils.HandleSpinnerSuccess(spinner, sm, "No projects found.")
	} else {
		utils.HandleSpinnerSuccess(spinner, sm, "Projects listed.")
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			utils.OrEmptyCell(p.Name),
			utils.OrEmptyCell(p.ID.String()),
			utils.OrEmptyCell(p.UUID),
			strconv.Itoa(len(p.Environments)),
		})
	}
	return utils.PrintTableJSONOutput(output, []string{"NAME", "ID", "UUID", "ENVIRONMENTS"}, rows, projects)
}
