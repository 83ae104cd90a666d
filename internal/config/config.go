// Package config defines the deployment configuration and its loading
// and validation rules.
//
// A deployment is described by a small YAML file (skybox.yaml). Every
// field has a literal default except the tenant identifier and the
// provider, which are always required. Defaults are applied at load
// time, before validation.
package config

import "fmt"

// Supported cloud providers.
const (
	ProviderAWS    = "aws"
	ProviderAzure  = "azure"
	ProviderGCP    = "gcp"
	ProviderHCloud = "hcloud"
)

// Providers lists all supported provider identifiers.
var Providers = []string{ProviderAWS, ProviderAzure, ProviderGCP, ProviderHCloud}

// Config holds the deployment configuration.
type Config struct {
	// Tenant identifies the deployment. All cloud resource names are
	// derived from it.
	Tenant   string `yaml:"tenant"`
	Provider string `yaml:"provider"`

	// Region is the provider region (AWS), location (Azure), zone
	// (GCP, e.g. us-central1-a) or location (Hetzner).
	Region string `yaml:"region,omitempty"`

	// MachineType is the provider-specific instance size.
	MachineType string `yaml:"machine_type,omitempty"`

	// Image selects the OS image. Empty means the provider's Ubuntu
	// 22.04 LTS default.
	Image string `yaml:"image,omitempty"`

	AdminUser string `yaml:"admin_user,omitempty"`

	// SSHAllowedCIDRs are the source ranges allowed to reach tcp/22.
	SSHAllowedCIDRs []string `yaml:"ssh_allowed_cidrs,omitempty"`

	NetworkCIDR string `yaml:"network_cidr,omitempty"`
	SubnetCIDR  string `yaml:"subnet_cidr,omitempty"`

	Key KeyConfig `yaml:"key,omitempty"`

	// Tags are merged into the standard tag/label set on every
	// resource that supports them.
	Tags map[string]string `yaml:"tags,omitempty"`

	// InstanceProfile optionally attaches an IAM instance profile to
	// the VM. AWS only; created when it does not exist.
	InstanceProfile string `yaml:"instance_profile,omitempty"`

	Azure AzureConfig `yaml:"azure,omitempty"`
	GCP   GCPConfig   `yaml:"gcp,omitempty"`
}

// KeyConfig controls local SSH key pair generation.
type KeyConfig struct {
	// Type is "rsa" or "ed25519".
	Type string `yaml:"type,omitempty"`
	// Bits is the RSA modulus size. Ignored for ed25519.
	Bits int `yaml:"bits,omitempty"`
}

// AzureConfig holds Azure-specific settings.
type AzureConfig struct {
	// SubscriptionID may be left empty, in which case the
	// AZURE_SUBSCRIPTION_ID environment variable is used.
	SubscriptionID string `yaml:"subscription_id,omitempty"`
	// ResourceGroup defaults to "<tenant>-rg".
	ResourceGroup string `yaml:"resource_group,omitempty"`
}

// GCPConfig holds GCP-specific settings.
type GCPConfig struct {
	// Project is required when provider is gcp.
	Project string `yaml:"project,omitempty"`
}

// Per-provider defaults, mirroring the variable defaults of the
// original deployment templates.
var (
	defaultRegions = map[string]string{
		ProviderAWS:    "us-east-1",
		ProviderAzure:  "eastus",
		ProviderGCP:    "us-central1-a",
		ProviderHCloud: "fsn1",
	}

	defaultMachineTypes = map[string]string{
		ProviderAWS:    "t3.micro",
		ProviderAzure:  "Standard_B1s",
		ProviderGCP:    "e2-micro",
		ProviderHCloud: "cx22",
	}
)

const (
	defaultAdminUser      = "ubuntu"
	defaultAzureAdminUser = "azureuser"
	defaultNetworkCIDR    = "10.80.0.0/16"
	defaultSubnetCIDR     = "10.80.1.0/24"
	defaultKeyBits        = 4096
)

// ApplyDefaults fills in all unset fields with their literal defaults.
// Provider-dependent defaults require Provider to be set; ApplyDefaults
// leaves them empty otherwise and validation reports the missing
// provider instead.
func (c *Config) ApplyDefaults() {
	if c.Region == "" {
		c.Region = defaultRegions[c.Provider]
	}
	if c.MachineType == "" {
		c.MachineType = defaultMachineTypes[c.Provider]
	}
	if c.AdminUser == "" {
		if c.Provider == ProviderAzure {
			c.AdminUser = defaultAzureAdminUser
		} else {
			c.AdminUser = defaultAdminUser
		}
	}
	if len(c.SSHAllowedCIDRs) == 0 {
		c.SSHAllowedCIDRs = []string{"0.0.0.0/0"}
	}
	if c.NetworkCIDR == "" {
		c.NetworkCIDR = defaultNetworkCIDR
	}
	if c.SubnetCIDR == "" {
		c.SubnetCIDR = defaultSubnetCIDR
	}
	if c.Key.Type == "" {
		c.Key.Type = "rsa"
	}
	if c.Key.Bits == 0 {
		c.Key.Bits = defaultKeyBits
	}
	if c.Azure.ResourceGroup == "" && c.Tenant != "" {
		c.Azure.ResourceGroup = fmt.Sprintf("%s-rg", c.Tenant)
	}
}

// DefaultRegion returns the default region for a provider.
func DefaultRegion(provider string) string {
	return defaultRegions[provider]
}

// DefaultMachineType returns the default machine type for a provider.
func DefaultMachineType(provider string) string {
	return defaultMachineTypes[provider]
}

// DefaultConfig returns a fully defaulted configuration for the given
// tenant and provider, as written by "skybox init --defaults".
func DefaultConfig(tenant, provider string) *Config {
	cfg := &Config{
		Tenant:   tenant,
		Provider: provider,
	}
	cfg.ApplyDefaults()
	return cfg
}
