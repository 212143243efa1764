package deployment

import "github.com/spf13/cobra"

var Cmd = &cobra.Command{
	Use:          "deployment [operation] [flags]",
	Short:        "List and open deployments",
	Run:          runDeployment,
	SilenceUsage: true,
	Aliases:      []string{"deployments"},
}

func runDeployment(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(openCmd)
}
