package configure

import (
	"strings"

	"github.com/coolify-tools/coolify-ctl/internal/config"
	"github.com/coolify-tools/coolify-ctl/internal/utils"
	"github.com/spf13/cobra"
)

const configureExample = `# Point the CLI at your instance
coolify-ctl configure --instance-url https://coolify.example.com --token <api-token>

# Show the stored configuration
coolify-ctl configure show`

// Cmd stores the instance URL and API token used by every other command.
var Cmd = &cobra.Command{
	Use:          "configure [flags]",
	Short:        "Configure the instance URL and API token",
	Example:      configureExample,
	RunE:         runConfigure,
	SilenceUsage: true,
}

var showCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the stored configuration",
	RunE:         runShow,
	SilenceUsage: true,
}

func init() {
	Cmd.Flags().String("instance-url", "", "Base URL of the instance, e.g. https://coolify.example.com")
	Cmd.Flags().String("token", "", "API token created in the instance dashboard")
	Cmd.AddCommand(showCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	instanceURL, err := cmd.Flags().GetString("instance-url")
	if err != nil {
		utils.PrintError(err)
		return err
	}
	token, err := cmd.Flags().GetString("token")
	if err != nil {
		utils.PrintError(err)
		return err
	}

	if strings.TrimSpace(instanceURL) == "" && strings.TrimSpace(token) == "" {
		return cmd.Help()
	}

	if err := config.SetAuth(instanceURL, token); err != nil {
		utils.PrintError(err)
		return err
	}
	utils.PrintSuccess("Configuration saved.")
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	instanceURL, err := config.GetInstanceURL()
	if err != nil {
		instanceURL = "(not configured)"
	}
	token, err := config.GetToken()
	switch {
	case err != nil:
		token = "(not configured)"
	case len(token) > 8:
		token = token[:4] + "..." + token[len(token)-4:]
	default:
		token = "(set)"
	}

	rows := [][]string{
		{"instance_url", instanceURL},
		{"token", token},
	}
	return utils.PrintTableJSONOutput(utils.OutputTypeTable, []string{"KEY", "VALUE"}, rows, nil)
}
