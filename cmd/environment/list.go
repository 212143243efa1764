package environment

import (
	"github.com/chelnak/ysmrr"
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/dataaccess"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/spf13/cobra"
)

const listExample = `# List the environments of every project
coolify-ctl environment list

# List the environments of one project
coolify-ctl environment list --project 1`

var listCmd = &cobra.Command{
	Use:          "list [flags]",
	Short:        "List environments across projects",
	Example:      listExample,
	RunE:         runList,
	SilenceUsage: true,
}

func init() {
	listCmd.Flags().String("project", "", "Only list environments of this project id or uuid")
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	projectFilter, err := cmd.Flags().GetString("project")
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
		spinner = sm.AddSpinner("Listing environments...")
		utils.StartSpinnerWithCleanup(sm)
	}

	projects, err := dataaccess.ListProjects(cmd.Context(), token)
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}
	envs, err := dataaccess.ListAllEnvironments(cmd.Context(), token, projects)
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}

	if want := correlate.NormalizeID(projectFilter); want != "" {
		filtered := make([]model.ProjectEnvironment, 0, len(envs))
		for _, e := range envs {
			if e.ProjectID == want || e.ProjectUUID == want {
				filtered = append(filtered, e)
			}
		}
		envs = filtered
	}

	if len(envs) == 0 {
		utils.HandleSpinnerSuccess(spinner, sm, "No environments found.")
	} else {
		utils.HandleSpinnerSuccess(spinner, sm, "Environments listed.")
	}

	rows := make([][]string, 0, len(envs))
	for _, e := range envs {
		rows = append(rows, []string{
			utils.OrEmptyCell(e.Name),
			utils.OrEmptyCell(e.ProjectName),
			utils.OrEmptyCell(e.ID),
			utils.OrEmptyCell(e.UUID),
		})
	}
	return utils.PrintTableJSONOutput(output, []string{"NAME", "PROJECT", "ID", "UUID"}, rows, envs)
}
