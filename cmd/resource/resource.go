package resource

import "github.com/spf13/cobra"

// Cmd is the parent for everything operating on the unified resource view.
var Cmd = &cobra.Command{
	Use:          "resource [operation] [flags]",
	Short:        "List, search and open deployed resources",
	Long:         `This command helps you work with the applications, services and databases deployed on your instance, unified into a single collection.`,
	Run:          runResource,
	SilenceUsage: true,
	Aliases:      []string{"resources"},
}

func runResource(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(openCmd)
	Cmd.AddCommand(logsCmd)
}
