package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/coolify-tools/coolify-ctl/cmd/configure"
	"github.com/coolify-tools/coolify-ctl/cmd/deployment"
	"github.com/coolify-tools/coolify-ctl/cmd/environment"
	"github.com/coolify-tools/coolify-ctl/cmd/project"
	"github.com/coolify-tools/coolify-ctl/cmd/resource"
	"github.com/coolify-tools/coolify-ctl/internal/config"
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const versionDescription = "coolify-ctl %s"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "coolify-ctl",
	Short: "Browse and cross-link everything deployed on your Coolify instance",
	Long: wordwrap.WrapString(`
coolify-ctl aggregates the projects, environments, applications, services, databases and deployments of a Coolify instance into one filterable, searchable collection, with canonical dashboard links for every record.

Point it at your instance once with 'coolify-ctl configure', then list and filter across everything the API exposes.

Available Commands:

`, 100),
	Run:               runRoot,
	DisableAutoGenTag: true,
}

func runRoot(cmd *cobra.Command, args []string) {
	versionFlag, err := cmd.Flags().GetBool("version")
	if err == nil && versionFlag {
		fmt.Println(fmt.Sprintf(versionDescription, config.Version))
		return
	}

	printLogo()
	err = cmd.Help()
	if err != nil {
		return
	}
}

// printLogo prints an ASCII logo, which was generated with figlet
func printLogo() {
	fmt.Println()
	colors := []color.Attribute{
		color.FgMagenta, color.FgBlue, color.FgCyan, color.FgGreen, color.FgYellow, color.FgRed,
	}
	for i, r := range figletStr {
		fmt.Printf("%s", color.New(colors[i%len(colors)]).SprintFunc()(string(r)))
	}
}

const figletStr = `                    ___ ____          __  __
  _________  ____  / (_) __/_  ______/ /_/ /
 / ___/ __ \/ __ \/ / / /_/ / / /___/ __/ /
/ /__/ /_/ / /_/ / / / __/ /_/ /___/ /_/ /
\___/\____/\____/_/_/_/  \__, /    \__/_/
                        /____/

`

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx := context.Background()
	configureLogging()
	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func configureLogging() {
	level, err := zerolog.ParseLevel(config.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func init() {
	RootCmd.PersistentFlags().BoolP("version", "v", false, "Print the version number of coolify-ctl")
	RootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (text|table|json)")

	RootCmd.AddCommand(configure.Cmd)
	RootCmd.AddCommand(resource.Cmd)
	RootCmd.AddCommand(project.Cmd)
	RootCmd.AddCommand(environment.Cmd)
	RootCmd.AddCommand(deployment.Cmd)

	// Hide the default completion command
	RootCmd.Root().CompletionOptions.DisableDefaultCmd = true
}
