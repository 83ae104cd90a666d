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

// EnsureNetwork gets or creates the tenant network and attaches the
// subnet to it.
func (c *Client) EnsureNetwork(ctx context.Context) (*cloud.Network, error) {
	name := c.names.Network()

	network, err := c.api.GetNetwork(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get network: %w", err)
	}

	if network == nil {
		_, ipRange, err := net.ParseCIDR(c.cfg.NetworkCIDR)
		if err != nil {
			return nil, fmt.Errorf("invalid network CIDR: %w", err)
		}
		network, err = c.api.CreateNetwork(ctx, hcloud.NetworkCreateOpts{
			Name:    name,
			IPRange: ipRange,
			Labels:  c.labels(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create network: %w", err)
		}
		log.Printf("Created network %s (%d)", name, network.ID)
	}

	if err := c.ensureSubnet(ctx, network); err != nil {
		return nil, err
	}

	return &cloud.Network{
		ID:         strconv.FormatInt(network.ID, 10),
		Name:       name,
		CIDR:       network.IPRange.String(),
		SubnetID:   strconv.FormatInt(network.ID, 10),
		SubnetCIDR: c.cfg.SubnetCIDR,
	}, nil
}

// ensureSubnet adds the tenant subnet to the network unless a subnet
// with the same range is already attached.
func (c *Client) ensureSubnet(ctx context.Context, network *hcloud.Network) error {
	for _, subnet := range network.Subnets {
		if subnet.IPRange.String() == c.cfg.SubnetCIDR {
			return nil
		}
	}

	_, ipRange, err := net.ParseCIDR(c.cfg.SubnetCIDR)
	if err != nil {
		return fmt.Errorf("invalid subnet CIDR: %w", err)
	}

	err = c.api.AddSubnet(ctx, network, hcloud.NetworkAddSubnetOpts{
		Subnet: hcloud.NetworkSubnet{
			Type:        hcloud.NetworkSubnetTypeCloud,
			IPRange:     ipRange,
			NetworkZone: c.networkZone(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add subnet: %w", err)
	}
	return nil
}

// DeleteNetwork removes the tenant network. Deletion is retried while
// the network is still locked by a detaching server.
func (c *Client) DeleteNetwork(ctx context.Context) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		network, err := c.api.GetNetwork(ctx, c.names.Network())
		if err != nil {
			return retry.Fatal(fmt.Errorf("failed to get network: %w", err))
		}
		if network == nil {
			return nil
		}
		if err := c.api.DeleteNetwork(ctx, network); err != nil {
			if isResourceLocked(err) {
				return err
			}
			return retry.Fatal(err)
		}
		log.Printf("Deleted network %s", c.names.Network())
		return nil
	})
}
