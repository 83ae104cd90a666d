package gcp

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/protobuf/proto"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// EnsureNetwork gets or creates the tenant VPC network and its
// subnetwork. Auto-created subnetworks are disabled so the subnet CIDR
// stays under our control.
func (c *Client) EnsureNetwork(ctx context.Context) (*cloud.Network, error) {
	netName := c.names.Network()

	network, err := c.networks.Get(ctx, &computepb.GetNetworkRequest{
		Project: c.project,
		Network: netName,
	})
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to get network: %w", err)
		}
		err = c.networks.Insert(ctx, &computepb.InsertNetworkRequest{
			Project: c.project,
			NetworkResource: &computepb.Network{
				Name:                  proto.String(netName),
				AutoCreateSubnetworks: proto.Bool(false),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create network: %w", err)
		}
		network, err = c.networks.Get(ctx, &computepb.GetNetworkRequest{
			Project: c.project,
			Network: netName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get created network: %w", err)
		}
		log.Printf("Created network %s", netName)
	}

	subnet, err := c.ensureSubnetwork(ctx, network.GetSelfLink())
	if err != nil {
		return nil, err
	}

	return &cloud.Network{
		ID:         network.GetSelfLink(),
		Name:       netName,
		CIDR:       c.cfg.NetworkCIDR,
		SubnetID:   subnet.GetSelfLink(),
		SubnetCIDR: subnet.GetIpCidrRange(),
	}, nil
}

func (c *Client) ensureSubnetwork(ctx context.Context, networkURL string) (*computepb.Subnetwork, error) {
	subnetName := c.names.Subnet()
	region := c.region()

	subnet, err := c.subnetworks.Get(ctx, &computepb.GetSubnetworkRequest{
		Project:    c.project,
		Region:     region,
		Subnetwork: subnetName,
	})
	if err == nil {
		return subnet, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get subnetwork: %w", err)
	}

	err = c.subnetworks.Insert(ctx, &computepb.InsertSubnetworkRequest{
		Project: c.project,
		Region:  region,
		SubnetworkResource: &computepb.Subnetwork{
			Name:        proto.String(subnetName),
			Network:     proto.String(networkURL),
			IpCidrRange: proto.String(c.cfg.SubnetCIDR),
			Region:      proto.String(region),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subnetwork: %w", err)
	}

	subnet, err = c.subnetworks.Get(ctx, &computepb.GetSubnetworkRequest{
		Project:    c.project,
		Region:     region,
		Subnetwork: subnetName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get created subnetwork: %w", err)
	}
	log.Printf("Created subnetwork %s", subnetName)
	return subnet, nil
}

// DeleteNetwork removes the tenant subnetwork and network. A missing
// resource is treated as already deleted.
func (c *Client) DeleteNetwork(ctx context.Context) error {
	err := c.subnetworks.Delete(ctx, &computepb.DeleteSubnetworkRequest{
		Project:    c.project,
		Region:     c.region(),
		Subnetwork: c.names.Subnet(),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete subnetwork: %w", err)
	}

	err = c.networks.Delete(ctx, &computepb.DeleteNetworkRequest{
		Project: c.project,
		Network: c.names.Network(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete network: %w", err)
	}

	log.Printf("Deleted network %s", c.names.Network())
	return nil
}
