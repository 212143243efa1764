package environment

import "github.com/spf13/cobra"

var Cmd = &cobra.Command{
	Use:          "environment [operation] [flags]",
	Short:        "List the environments of your instance",
	Run:          runEnvironment,
	SilenceUsage: true,
	Aliases:      []string{"environments", "env"},
}

func runEnvironment(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}

func init() {
	Cmd.AddCommand(listCmd)
}
