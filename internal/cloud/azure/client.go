// Package azure implements the deployment provisioner against Azure
// Resource Manager using the azure-sdk-for-go track 2 clients.
//
// All tenant resources live in a dedicated resource group, so lookups
// are plain Get calls by name and destruction can fall back to deleting
// the group as a whole.
package azure

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/naming"
)

var _ cloud.Provisioner = (*Client)(nil)

// Client provisions tenant deployments on Azure.
type Client struct {
	groups    resourceGroupsAPI
	vnets     virtualNetworksAPI
	subnets   subnetsAPI
	nsgs      securityGroupsAPI
	publicIPs publicIPsAPI
	nics      interfacesAPI
	vms       virtualMachinesAPI
	sshKeys   sshKeysAPI

	cfg   *config.Config
	names *naming.Names
}

// New creates a Client using the default Azure credential chain
// (environment, workload identity, managed identity, CLI). The
// subscription comes from the configuration or AZURE_SUBSCRIPTION_ID.
func New(_ context.Context, cfg *config.Config) (*Client, error) {
	subscription := cfg.Azure.SubscriptionID
	if subscription == "" {
		subscription = os.Getenv("AZURE_SUBSCRIPTION_ID")
	}
	if subscription == "" {
		return nil, fmt.Errorf("azure subscription ID is not set (config azure.subscription_id or AZURE_SUBSCRIPTION_ID)")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Azure credentials: %w", err)
	}

	groups, err := armresources.NewResourceGroupsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	vnets, err := armnetwork.NewVirtualNetworksClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	subnets, err := armnetwork.NewSubnetsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subnets client: %w", err)
	}
	nsgs, err := armnetwork.NewSecurityGroupsClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create security groups client: %w", err)
	}
	publicIPs, err := armnetwork.NewPublicIPAddressesClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}
	nics, err := armnetwork.NewInterfacesClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create interfaces client: %w", err)
	}
	vms, err := armcompute.NewVirtualMachinesClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual machines client: %w", err)
	}
	sshKeys, err := armcompute.NewSSHPublicKeysClient(subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH keys client: %w", err)
	}

	return &Client{
		groups:    groupsClient{raw: groups},
		vnets:     vnetsClient{raw: vnets},
		subnets:   subnetsClient{raw: subnets},
		nsgs:      nsgsClient{raw: nsgs},
		publicIPs: publicIPsClient{raw: publicIPs},
		nics:      nicsClient{raw: nics},
		vms:       vmsClient{raw: vms},
		sshKeys:   sshKeysClient{raw: sshKeys},
		cfg:       cfg,
		names:     naming.NewNames(cfg.Tenant),
	}, nil
}

// resourceGroup returns the configured resource group name, falling
// back to the tenant-derived default.
func (c *Client) resourceGroup() string {
	if c.cfg.Azure.ResourceGroup != "" {
		return c.cfg.Azure.ResourceGroup
	}
	return c.names.ResourceGroup()
}

func (c *Client) tags() map[string]*string {
	tags := make(map[string]*string)
	for k, v := range cloud.BaseTags(c.cfg.Tenant, c.cfg.Tags) {
		v := v
		tags[k] = &v
	}
	return tags
}
