package provision

import (
	"context"
	"fmt"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/cloud/aws"
	"github.com/skybox-cli/skybox/internal/cloud/azure"
	"github.com/skybox-cli/skybox/internal/cloud/gcp"
	"github.com/skybox-cli/skybox/internal/cloud/hcloud"
	"github.com/skybox-cli/skybox/internal/config"
)

// NewProvisioner creates the provider client for the configured target.
func NewProvisioner(ctx context.Context, cfg *config.Config) (cloud.Provisioner, error) {
	switch cfg.Provider {
	case config.ProviderAWS:
		return aws.New(ctx, cfg)
	case config.ProviderAzure:
		return azure.New(ctx, cfg)
	case config.ProviderGCP:
		return gcp.New(ctx, cfg)
	case config.ProviderHCloud:
		return hcloud.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
