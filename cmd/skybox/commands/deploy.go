package commands

import (
	"github.com/spf13/cobra"

	"github.com/skybox-cli/skybox/cmd/skybox/handlers"
)

// Deploy returns the deploy command.
//
// Deploy provisions the configured deployment: network, security
// group, SSH key, and instance. Every step is get-or-create, so the
// command can be re-run safely.
func Deploy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Provision the deployment described by the configuration",
		Long: `Deploy provisions the configured deployment on the selected cloud.

Resources are created in dependency order:
  - SSH key pair (generated locally on first run, then reused)
  - Network and subnet
  - Security group / firewall allowing SSH
  - Virtual machine with a public IP

Each resource is looked up by its tenant-derived name first and only
created when absent, so re-running deploy after a partial failure or a
configuration change converges on the same resources.

The deployment outputs (addresses, SSH command) are printed and saved
to skybox-outputs.yaml next to the configuration.

Example:
  skybox deploy -c skybox.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default skybox.yaml)")

	return cmd
}
