package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/skybox-cli/skybox/internal/provision"
)

// Destroy handles the destroy command.
//
// It deletes the tenant's instance and key pair. The network and
// security group are shared across the tenant's deployments and are
// kept unless purge is set, in which case everything the tenant owns
// is removed.
func Destroy(ctx context.Context, configPath string, purge bool) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying tenant %s on %s", cfg.Tenant, cfg.Provider)

	p, err := newProvisioner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.Provider, err)
	}

	deployer := provision.NewDeployer(p, cfg)

	if err := deployer.Destroy(ctx, purge); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	if purge {
		log.Printf("Tenant %s destroyed, including shared network resources", cfg.Tenant)
	} else {
		log.Printf("Tenant %s destroyed; shared network kept (use --purge to remove it)", cfg.Tenant)
	}
	return nil
}
