package wizard

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/keygen"
)

// tenantRegex validates tenant format: 1-32 lowercase alphanumeric
// with hyphens.
var tenantRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runIdentityGroup prompts for tenant name and provider.
func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tenant").
				Description("1-32 lowercase alphanumeric characters or hyphens; all resource names derive from it").
				Placeholder("acme").
				Value(&result.Tenant).
				Validate(validateTenant),
			huh.NewSelect[string]().
				Title("Provider").
				Description("Cloud the deployment lands on").
				Options(ProviderOptions...).
				Value(&result.Provider),
		).Title("Deployment Identity"),
	).RunWithContext(ctx)
}

// runTargetGroup prompts for region and machine type. Defaults follow
// the selected provider.
func runTargetGroup(ctx context.Context, result *Result) error {
	result.Region = config.DefaultRegion(result.Provider)
	result.MachineType = config.DefaultMachineType(result.Provider)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("Where the deployment runs").
				Options(RegionsToOptions(result.Provider)...).
				Value(&result.Region),
			huh.NewInput().
				Title("Machine Type").
				Description("Instance size, in the provider's own naming").
				Value(&result.MachineType).
				Validate(validateNotEmpty("machine type")),
		).Title("Deployment Target"),
	).RunWithContext(ctx)
}

// runSSHAccessGroup prompts for SSH source ranges and key algorithm.
func runSSHAccessGroup(ctx context.Context, result *Result) error {
	cidrsInput := "0.0.0.0/0"
	result.KeyType = keygen.TypeRSA

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SSH Source Ranges").
				Description("Comma-separated CIDRs allowed to reach port 22").
				Placeholder("0.0.0.0/0").
				Value(&cidrsInput).
				Validate(validateCIDRList),
			huh.NewSelect[string]().
				Title("SSH Key Type").
				Description("Algorithm for the generated key pair").
				Options(KeyTypeOptions...).
				Value(&result.KeyType),
		).Title("SSH Access"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.SSHAllowedCIDRs = parseCIDRList(cidrsInput)
	return nil
}

// runProviderDetailsGroup prompts for provider-specific settings, and
// is skipped entirely for providers that need none.
func runProviderDetailsGroup(ctx context.Context, result *Result) error {
	switch result.Provider {
	case config.ProviderAzure:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Subscription ID (Optional)").
					Description("Leave empty to use AZURE_SUBSCRIPTION_ID").
					Value(&result.AzureSubscriptionID),
			).Title("Azure Details"),
		).RunWithContext(ctx)
	case config.ProviderGCP:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Project ID").
					Description("Google Cloud project the deployment lives in").
					Value(&result.GCPProject).
					Validate(validateNotEmpty("project ID")),
			).Title("Google Cloud Details"),
		).RunWithContext(ctx)
	default:
		return nil
	}
}

func validateTenant(s string) error {
	if !tenantRegex.MatchString(s) {
		return fmt.Errorf("must be 1-32 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateNotEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", what)
		}
		return nil
	}
}

func validateCIDRList(s string) error {
	cidrs := parseCIDRList(s)
	if len(cidrs) == 0 {
		return fmt.Errorf("at least one CIDR is required")
	}
	for _, cidr := range cidrs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid CIDR %q", cidr)
		}
	}
	return nil
}

func parseCIDRList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
