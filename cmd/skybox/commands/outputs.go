package commands

import (
	"github.com/spf13/cobra"

	"github.com/skybox-cli/skybox/cmd/skybox/handlers"
)

// Outputs returns the outputs command.
func Outputs() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Show the deployment outputs",
		Long: `Outputs queries the live deployment and prints its outputs: instance
identity, public and private addresses, and the SSH command to reach
it. Nothing is created or modified.

Example:
  skybox outputs -c skybox.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default skybox.yaml)")

	return cmd
}
