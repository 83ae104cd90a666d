package handlers

import (
	"context"
	"fmt"

	"github.com/skybox-cli/skybox/internal/provision"
)

// Outputs handles the outputs command.
//
// It queries the provider for the tenant's instance and prints the
// deployment outputs with the current live state.
func Outputs(ctx context.Context, configPath string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	p, err := newProvisioner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.Provider, err)
	}

	deployer := provision.NewDeployer(p, cfg)

	out, err := deployer.Outputs(ctx)
	if err != nil {
		return err
	}

	fmt.Print(renderOutputs("skybox outputs", out))
	return nil
}
