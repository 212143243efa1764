package project

import "github.com/spf13/cobra"

var Cmd = &cobra.Command{
	Use:          "project [operation] [flags]",
	Short:        "List the projects of your instance",
	Run:          runProject,
	SilenceUsage: true,
	Aliases:      []string{"projects"},
}

func runProject(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}

func init() {
	Cmd.AddCommand(listCmd)
}
