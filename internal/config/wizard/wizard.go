// Package wizard implements the interactive configuration flow behind
// `skybox init`. The questions run as a sequence of small huh forms,
// and the answers are turned into a validated deployment configuration.
package wizard

import (
	"context"
	"fmt"

	"github.com/skybox-cli/skybox/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Deployment identity
	Tenant   string
	Provider string

	// Target
	Region      string
	MachineType string

	// SSH access
	SSHAllowedCIDRs []string
	KeyType         string

	// Provider specifics
	AzureSubscriptionID string
	GCPProject          string
}

// Run runs the interactive configuration wizard. The context cancels
// the forms on Ctrl+C.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("deployment identity: %w", err)
	}
	if err := runTargetGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("deployment target: %w", err)
	}
	if err := runSSHAccessGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("ssh access: %w", err)
	}
	if err := runProviderDetailsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("provider details: %w", err)
	}

	return result, nil
}

// BuildConfig converts wizard answers into a deployment configuration
// with defaults applied.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Tenant:          result.Tenant,
		Provider:        result.Provider,
		Region:          result.Region,
		MachineType:     result.MachineType,
		SSHAllowedCIDRs: result.SSHAllowedCIDRs,
	}
	cfg.Key.Type = result.KeyType
	cfg.Azure.SubscriptionID = result.AzureSubscriptionID
	cfg.GCP.Project = result.GCPProject
	cfg.ApplyDefaults()
	return cfg
}
