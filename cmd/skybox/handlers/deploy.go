package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/provision"
)

// Factory function variables for deploy - can be replaced in tests.
var (
	// loadConfig loads and validates the deployment configuration.
	loadConfig = config.Load

	// newProvisioner builds the provider client for the configuration.
	newProvisioner = provision.NewProvisioner
)

// Deploy handles the deploy command.
//
// It loads the deployment configuration, ensures the tenant network,
// security group and key pair exist, and creates the instance if it is
// not already running. Deploy is idempotent: re-running it against an
// existing deployment reports the current state without creating
// anything new.
func Deploy(ctx context.Context, configPath string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Deploying tenant %s on %s (%s)", cfg.Tenant, cfg.Provider, cfg.Region)

	p, err := newProvisioner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.Provider, err)
	}

	deployer := provision.NewDeployer(p, cfg)

	out, err := deployer.Deploy(ctx)
	if err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}

	fmt.Print(renderOutputs("skybox deploy", out))
	return nil
}

// resolveConfig loads the configuration from the given path, falling
// back to skybox.yaml in the current directory when the path is empty.
func resolveConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config specified and %w", err)
		}
		configPath = found
	}
	return loadConfig(configPath)
}
