package azure

import (
	"context"
	"fmt"
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// EnsureNetwork gets or creates the tenant resource group, virtual
// network, and subnet.
func (c *Client) EnsureNetwork(ctx context.Context) (*cloud.Network, error) {
	if err := c.ensureResourceGroup(ctx); err != nil {
		return nil, err
	}

	rg := c.resourceGroup()
	vnetName := c.names.Network()

	vnet, err := c.vnets.Get(ctx, rg, vnetName)
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to get virtual network: %w", err)
		}
		vnet, err = c.vnets.CreateOrUpdate(ctx, rg, vnetName, armnetwork.VirtualNetwork{
			Location: to.Ptr(c.cfg.Region),
			Tags:     c.tags(),
			Properties: &armnetwork.VirtualNetworkPropertiesFormat{
				AddressSpace: &armnetwork.AddressSpace{
					AddressPrefixes: []*string{to.Ptr(c.cfg.NetworkCIDR)},
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create virtual network: %w", err)
		}
		log.Printf("Created virtual network %s", vnetName)
	}

	subnet, err := c.ensureSubnet(ctx, rg, vnetName)
	if err != nil {
		return nil, err
	}

	return &cloud.Network{
		ID:         deref(vnet.ID),
		Name:       vnetName,
		CIDR:       c.cfg.NetworkCIDR,
		SubnetID:   deref(subnet.ID),
		SubnetCIDR: c.cfg.SubnetCIDR,
	}, nil
}

// ensureResourceGroup creates the tenant resource group. CreateOrUpdate
// is idempotent, so no lookup is needed.
func (c *Client) ensureResourceGroup(ctx context.Context) error {
	err := c.groups.CreateOrUpdate(ctx, c.resourceGroup(), armresources.ResourceGroup{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
	})
	if err != nil {
		return fmt.Errorf("failed to create resource group: %w", err)
	}
	return nil
}

func (c *Client) ensureSubnet(ctx context.Context, rg, vnetName string) (*armnetwork.Subnet, error) {
	subnetName := c.names.Subnet()

	existing, err := c.subnets.Get(ctx, rg, vnetName, subnetName)
	if err == nil {
		return &existing, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get subnet: %w", err)
	}

	created, err := c.subnets.CreateOrUpdate(ctx, rg, vnetName, subnetName, armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{
			AddressPrefix: to.Ptr(c.cfg.SubnetCIDR),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subnet: %w", err)
	}

	log.Printf("Created subnet %s", subnetName)
	return &created, nil
}

// DeleteNetwork removes the tenant network. When the deployment uses
// the tenant-derived resource group the whole group is deleted, taking
// any stragglers with it. A user-supplied resource group may hold
// resources that are not ours, so only the virtual network is removed
// and the group is left alone. A missing group or network is treated
// as already deleted.
func (c *Client) DeleteNetwork(ctx context.Context) error {
	rg := c.resourceGroup()

	if rg != c.names.ResourceGroup() {
		if err := c.vnets.Delete(ctx, rg, c.names.Network()); err != nil {
			if isNotFound(err) {
				return nil
			}
			return fmt.Errorf("failed to delete virtual network: %w", err)
		}
		log.Printf("Deleted virtual network %s (resource group %s retained)", c.names.Network(), rg)
		return nil
	}

	if err := c.groups.Delete(ctx, rg); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete resource group: %w", err)
	}
	log.Printf("Deleted resource group %s", rg)
	return nil
}
