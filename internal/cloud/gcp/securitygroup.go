package gcp

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/protobuf/proto"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// EnsureSecurityGroup gets or creates the tenant firewall rule allowing
// SSH from the configured source ranges. The rule targets instances
// carrying the tenant firewall tag, which CreateInstance attaches.
func (c *Client) EnsureSecurityGroup(ctx context.Context, network *cloud.Network) (*cloud.SecurityGroup, error) {
	name := c.names.SecurityGroup()

	existing, err := c.firewalls.Get(ctx, &computepb.GetFirewallRequest{
		Project:  c.project,
		Firewall: name,
	})
	if err == nil {
		return &cloud.SecurityGroup{ID: existing.GetSelfLink(), Name: name}, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get firewall: %w", err)
	}

	err = c.firewalls.Insert(ctx, &computepb.InsertFirewallRequest{
		Project: c.project,
		FirewallResource: &computepb.Firewall{
			Name:    proto.String(name),
			Network: proto.String(network.ID),
			Allowed: []*computepb.Allowed{{
				IPProtocol: proto.String("tcp"),
				Ports:      []string{"22"},
			}},
			Direction:    proto.String("INGRESS"),
			SourceRanges: c.cfg.SSHAllowedCIDRs,
			TargetTags:   []string{name},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create firewall: %w", err)
	}

	created, err := c.firewalls.Get(ctx, &computepb.GetFirewallRequest{
		Project:  c.project,
		Firewall: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get created firewall: %w", err)
	}

	log.Printf("Created firewall rule %s", name)
	return &cloud.SecurityGroup{ID: created.GetSelfLink(), Name: name}, nil
}

// DeleteSecurityGroup removes the tenant firewall rule. Absence is
// success.
func (c *Client) DeleteSecurityGroup(ctx context.Context) error {
	err := c.firewalls.Delete(ctx, &computepb.DeleteFirewallRequest{
		Project:  c.project,
		Firewall: c.names.SecurityGroup(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete firewall: %w", err)
	}
	return nil
}
