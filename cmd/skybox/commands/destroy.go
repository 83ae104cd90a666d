package commands

import (
	"github.com/spf13/cobra"

	"github.com/skybox-cli/skybox/cmd/skybox/handlers"
)

// Destroy returns the destroy command.
func Destroy() *cobra.Command {
	var (
		configPath string
		purge      bool
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the deployment",
		Long: `Destroy removes the deployment's instance and registered SSH key.

The network and security group are shared tenant infrastructure and are
kept by default, so a later deploy reuses them. Pass --purge to remove
them as well.

Example:
  skybox destroy -c skybox.yaml --purge

WARNING: This operation is irreversible. All instance data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, purge)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default skybox.yaml)")
	cmd.Flags().BoolVar(&purge, "purge", false, "Also delete the network and security group")

	return cmd
}
