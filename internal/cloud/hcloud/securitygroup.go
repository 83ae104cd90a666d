package hcloud

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/retry"
)

// EnsureSecurityGroup gets or creates the tenant firewall with an
// inbound SSH rule. An existing firewall has its rules overwritten with
// the desired state.
func (c *Client) EnsureSecurityGroup(ctx context.Context, _ *cloud.Network) (*cloud.SecurityGroup, error) {
	name := c.names.SecurityGroup()

	rules, err := c.sshRules()
	if err != nil {
		return nil, err
	}

	fw, err := c.api.GetFirewall(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get firewall: %w", err)
	}

	if fw != nil {
		if err := c.api.SetFirewallRules(ctx, fw, rules); err != nil {
			return nil, fmt.Errorf("failed to set firewall rules: %w", err)
		}
		return &cloud.SecurityGroup{ID: strconv.FormatInt(fw.ID, 10), Name: name}, nil
	}

	fw, err = c.api.CreateFirewall(ctx, hcloud.FirewallCreateOpts{
		Name:   name,
		Rules:  rules,
		Labels: c.labels(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create firewall: %w", err)
	}

	log.Printf("Created firewall %s (%d)", name, fw.ID)
	return &cloud.SecurityGroup{ID: strconv.FormatInt(fw.ID, 10), Name: name}, nil
}

func (c *Client) sshRules() ([]hcloud.FirewallRule, error) {
	sources := make([]net.IPNet, 0, len(c.cfg.SSHAllowedCIDRs))
	for _, cidr := range c.cfg.SSHAllowedCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid SSH source range %q: %w", cidr, err)
		}
		sources = append(sources, *ipNet)
	}

	return []hcloud.FirewallRule{{
		Direction: hcloud.FirewallRuleDirectionIn,
		Protocol:  hcloud.FirewallRuleProtocolTCP,
		Port:      hcloud.Ptr("22"),
		SourceIPs: sources,
	}}, nil
}

// DeleteSecurityGroup removes the tenant firewall. Deletion is retried
// while the firewall is still attached to a deleting server.
func (c *Client) DeleteSecurityGroup(ctx context.Context) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		fw, err := c.api.GetFirewall(ctx, c.names.SecurityGroup())
		if err != nil {
			return retry.Fatal(fmt.Errorf("failed to get firewall: %w", err))
		}
		if fw == nil {
			return nil
		}
		if err := c.api.DeleteFirewall(ctx, fw); err != nil {
			if isResourceLocked(err) {
				return err
			}
			return retry.Fatal(err)
		}
		return nil
	})
}
