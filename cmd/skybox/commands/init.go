package commands

import (
	"github.com/spf13/cobra"

	"github.com/skybox-cli/skybox/cmd/skybox/handlers"
)

// Init returns the command for interactively creating a deployment
// configuration.
func Init() *cobra.Command {
	var (
		outputPath string
		defaults   bool
		tenant     string
		provider   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring a deployment step by step.
It asks about:

  - Deployment identity (tenant name and cloud provider)
  - Deployment target (region and machine type)
  - SSH access (allowed source ranges and key algorithm)
  - Provider details (Azure subscription, GCP project)

Use --defaults with --tenant and --provider to skip the wizard and
write a configuration with all defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if defaults {
				return handlers.InitDefaults(outputPath, tenant, provider)
			}
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "skybox.yaml", "Output file path")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Skip the wizard and use defaults")
	cmd.Flags().StringVar(&tenant, "tenant", "", "Tenant name (with --defaults)")
	cmd.Flags().StringVar(&provider, "provider", "", "Provider: aws, azure, gcp, or hcloud (with --defaults)")

	return cmd
}
