package deployment

import (
	"sort"

	"github.com/chelnak/ysmrr"
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/dataaccess"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/spf13/cobra"
)

const listExample = `# List recent deployments across all applications
coolify-ctl deployment list

# List the deployment history of one application
coolify-ctl deployment list --application vgsco4o

# Search deployments by commit message or status
coolify-ctl deployment list -s "hotfix"`

var listCmd = &cobra.Command{
	Use:          "list [flags]",
	Short:        "List deployments with environment attribution",
	Example:      listExample,
	RunE:         runList,
	SilenceUsage: true,
}

func init() {
	listCmd.Flags().String("application", "", "Only list deployments of this application uuid")
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive substring search over application name, commit message, commit and status")
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	applicationUUID, err := cmd.Flags().GetString("application")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	search, err := cmd.Flags().GetString("search")
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
		spinner = sm.AddSpinner("Listing deployments...")
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
	apps, err := dataaccess.ListApplications(cmd.Context(), token)
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}

	var deployments []model.Deployment
	if uuid := correlate.NormalizeID(applicationUUID); uuid != "" {
		deployments, err = dataaccess.ListApplicationDeployments(cmd.Context(), token, uuid)
	} else {
		deployments, err = dataaccess.ListRecentDeployments(cmd.Context(), token, apps)
	}
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}

	deployments = correlate.SearchDeployments(deployments, search)
	sortNewestFirst(deployments)

	if len(deployments) == 0 {
		utils.HandleSpinnerSuccess(spinner, sm, "No deployments found.")
	} else {
		utils.HandleSpinnerSuccess(spinner, sm, "Deployments listed.")
	}

	lookups := correlate.BuildLookups(envs)
	appEnv := correlate.BuildAppEnvMap(apps)

	rows := make([][]string, 0, len(deployments))
	for _, d := range deployments {
		envID := correlate.DeploymentEnvironment(d, appEnv)
		rows = append(rows, []string{
			utils.OrEmptyCell(d.ApplicationName),
			utils.OrEmptyCell(d.Status),
			utils.OrEmptyCell(lookups.EnvName[envID]),
			utils.OrEmptyCell(utils.Truncate(d.Commit, 8)),
			utils.OrEmptyCell(utils.Truncate(d.CommitMessage, 40)),
			utils.OrEmptyCell(d.CreatedAt),
		})
	}
	return utils.PrintTableJSONOutput(output, []string{"APPLICATION", "STATUS", "ENVIRONMENT", "COMMIT", "MESSAGE", "CREATED"}, rows, deployments)
}

// sortNewestFirst orders by created_at descending. Timestamps are ISO-8601
// strings, so lexicographic comparison is chronological; records without one
// sink to the end.
func sortNewestFirst(deployments []model.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		a, b := deployments[i].CreatedAt, deployments[j].CreatedAt
		if (a == "") != (b == "") {
			return a != ""
		}
		return a > b
	})
}
