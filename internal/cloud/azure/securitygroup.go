package azure

import (
	"context"
	"fmt"
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// EnsureSecurityGroup gets or creates the tenant network security group
// with an inbound SSH rule for the configured source ranges. The group
// is attached to the VM's network interface at instance creation.
func (c *Client) EnsureSecurityGroup(ctx context.Context, _ *cloud.Network) (*cloud.SecurityGroup, error) {
	rg := c.resourceGroup()
	name := c.names.SecurityGroup()

	existing, err := c.nsgs.Get(ctx, rg, name)
	if err == nil {
		return &cloud.SecurityGroup{ID: deref(existing.ID), Name: name}, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get network security group: %w", err)
	}

	sources := make([]*string, 0, len(c.cfg.SSHAllowedCIDRs))
	for _, cidr := range c.cfg.SSHAllowedCIDRs {
		sources = append(sources, to.Ptr(cidr))
	}

	created, err := c.nsgs.CreateOrUpdate(ctx, rg, name, armnetwork.SecurityGroup{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
		Properties: &armnetwork.SecurityGroupPropertiesFormat{
			SecurityRules: []*armnetwork.SecurityRule{{
				Name: to.Ptr("allow-ssh"),
				Properties: &armnetwork.SecurityRulePropertiesFormat{
					Priority:                 to.Ptr(int32(1000)),
					Direction:                to.Ptr(armnetwork.SecurityRuleDirectionInbound),
					Access:                   to.Ptr(armnetwork.SecurityRuleAccessAllow),
					Protocol:                 to.Ptr(armnetwork.SecurityRuleProtocolTCP),
					SourcePortRange:          to.Ptr("*"),
					DestinationPortRange:     to.Ptr("22"),
					SourceAddressPrefixes:    sources,
					DestinationAddressPrefix: to.Ptr("*"),
				},
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create network security group: %w", err)
	}

	log.Printf("Created network security group %s", name)
	return &cloud.SecurityGroup{ID: deref(created.ID), Name: name}, nil
}

// DeleteSecurityGroup removes the tenant network security group.
// Absence is success.
func (c *Client) DeleteSecurityGroup(ctx context.Context) error {
	if err := c.nsgs.Delete(ctx, c.resourceGroup(), c.names.SecurityGroup()); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete network security group: %w", err)
	}
	return nil
}
