package config

import (
	"fmt"
	"net"
	"regexp"
	"slices"
)

// Tenant names become cloud resource names on every provider, so the
// common denominator applies: 1-32 lowercase alphanumerics and hyphens,
// starting and ending with an alphanumeric.
var tenantRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Validate checks the configuration for errors. It assumes defaults
// have been applied.
func (c *Config) Validate() error {
	if c.Tenant == "" {
		return fmt.Errorf("tenant is required")
	}
	if !tenantRegex.MatchString(c.Tenant) {
		return fmt.Errorf("tenant %q is invalid: must be 1-32 lowercase alphanumeric characters or hyphens", c.Tenant)
	}

	if c.Provider == "" {
		return fmt.Errorf("provider is required (one of %v)", Providers)
	}
	if !slices.Contains(Providers, c.Provider) {
		return fmt.Errorf("unsupported provider %q (one of %v)", c.Provider, Providers)
	}

	if c.Provider == ProviderGCP && c.GCP.Project == "" {
		return fmt.Errorf("gcp.project is required when provider is gcp")
	}

	for _, cidr := range c.SSHAllowedCIDRs {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("ssh_allowed_cidrs entry %q is not a valid CIDR: %w", cidr, err)
		}
	}

	_, netRange, err := net.ParseCIDR(c.NetworkCIDR)
	if err != nil {
		return fmt.Errorf("network_cidr %q is not a valid CIDR: %w", c.NetworkCIDR, err)
	}

	subnetIP, subnetRange, err := net.ParseCIDR(c.SubnetCIDR)
	if err != nil {
		return fmt.Errorf("subnet_cidr %q is not a valid CIDR: %w", c.SubnetCIDR, err)
	}

	if !cidrContains(netRange, subnetIP, subnetRange) {
		return fmt.Errorf("subnet_cidr %s is not contained in network_cidr %s", c.SubnetCIDR, c.NetworkCIDR)
	}

	switch c.Key.Type {
	case "rsa":
		if c.Key.Bits < 2048 {
			return fmt.Errorf("key.bits %d is too small: RSA keys need at least 2048 bits", c.Key.Bits)
		}
	case "ed25519":
	default:
		return fmt.Errorf("key.type %q is invalid: must be rsa or ed25519", c.Key.Type)
	}

	if c.InstanceProfile != "" && c.Provider != ProviderAWS {
		return fmt.Errorf("instance_profile is only supported on aws")
	}

	return nil
}

// cidrContains reports whether sub (with base IP subIP) lies entirely
// inside outer.
func cidrContains(outer *net.IPNet, subIP net.IP, sub *net.IPNet) bool {
	if !outer.Contains(subIP) {
		return false
	}
	outerOnes, _ := outer.Mask.Size()
	subOnes, _ := sub.Mask.Size()
	return subOnes >= outerOnes
}
