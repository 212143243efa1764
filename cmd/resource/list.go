package resource

import (
	"github.com/chelnak/ysmrr"
	"github.com/coolify-tools/coolify-ctl/cmd/common"
	"github.com/coolify-tools/coolify-ctl/internal/correlate"
	"github.com/coolify-tools/coolify-ctl/internal/model"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/spf13/cobra"
)

const (
	listExample = `# List every resource on the instance
coolify-ctl resource list

# List resources of one project
coolify-ctl resource list -f project:1

# List resources in any environment named production, matching "api"
coolify-ctl resource list -f env:production -s api

# List only currently active resources, grouped by project
coolify-ctl resource list -f status:active --group`
	defaultMaxNameLength = 30 // Maximum length of the name column in the table
)

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List resources across all projects and environments",
	Long: `This command lists the applications, services and databases of your instance as one collection.
One filter selector may be active at a time; free-text search applies on top of it.`,
	Example:      listExample,
	RunE:         runList,
	SilenceUsage: true,
}

func init() {
	listCmd.Flags().StringP("filter", "f", "all", "Filter selector to apply. One of: all, project:<id>, env:<name>, type:<application|service|database>, status:active")
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive substring search over name, subtitle, repository, kind and type")
	listCmd.Flags().BoolP("group", "g", false, "Group the output by project")
	listCmd.Flags().Bool("truncate", false, "Truncate long names in the output")
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	search, err := cmd.Flags().GetString("search")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	group, err := cmd.Flags().GetBool("group")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	truncateNames, err := cmd.Flags().GetBool("truncate")
	if err != nil {
		utils.PrintError(err)
		return err
	}

	selector, err := correlate.ParseSelector(filter)
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
		spinner = sm.AddSpinner("Listing resources...")
		utils.StartSpinnerWithCleanup(sm)
	}

	snapshot, err := common.LoadSnapshot(cmd.Context(), token)
	if err != nil {
		utils.HandleSpinnerError(spinner, sm, err)
		return err
	}

	items := correlate.FilterResources(snapshot.Resources, selector, snapshot.Lookups)
	items = correlate.SearchResources(items, search)
	items = correlate.SortResources(items, snapshot.Lookups)

	if len(items) == 0 {
		utils.HandleSpinnerSuccess(spinner, sm, "No resources found.")
	} else {
		utils.HandleSpinnerSuccess(spinner, sm, "Resources listed.")
	}

	if group {
		return printGrouped(output, items, snapshot.Lookups, truncateNames)
	}
	return printFlat(output, items, snapshot.Lookups, truncateNames)
}

var resourceHeaders = []string{"NAME", "TYPE", "PROJECT", "ENVIRONMENT", "STATUS", "URL"}

func resourceRow(it model.ResourceItem, lk correlate.Lookups, truncateNames bool) []string {
	name := it.Name
	if truncateNames {
		name = utils.Truncate(name, defaultMaxNameLength)
	}
	return []string{
		name,
		string(it.Type),
		utils.OrEmptyCell(correlate.ProjectNameFor(it, lk)),
		utils.OrEmptyCell(lk.EnvName[it.EnvironmentID]),
		utils.OrEmptyCell(it.Status),
		utils.OrEmptyCell(it.URL),
	}
}

func printFlat(output string, items []model.ResourceItem, lk correlate.Lookups, truncateNames bool) error {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, resourceRow(it, lk, truncateNames))
	}
	return utils.PrintTableJSONOutput(output, resourceHeaders, rows, items)
}

func printGrouped(output string, items []model.ResourceItem, lk correlate.Lookups, truncateNames bool) error {
	groups := correlate.GroupByProject(items, lk)
	if output == utils.OutputTypeJSON {
		return utils.PrintTableJSONOutput(output, nil, nil, groups)
	}
	for _, g := range groups {
		utils.PrintSuccess(g.Project)
		rows := make([][]string, 0, len(g.Items))
		for _, it := range g.Items {
			rows = append(rows, resourceRow(it, lk, truncateNames))
		}
		if err := utils.PrintTableJSONOutput(output, resourceHeaders, rows, g.Items); err != nil {
			return err
		}
	}
	return nil
}
