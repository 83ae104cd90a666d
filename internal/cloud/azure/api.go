package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// The api interfaces are the slice of Azure Resource Manager the
// provisioner uses. Methods backed by long-running operations poll
// them to completion before returning.

type resourceGroupsAPI interface {
	CreateOrUpdate(ctx context.Context, name string, group armresources.ResourceGroup) error
	Delete(ctx context.Context, name string) error
}

type virtualNetworksAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.VirtualNetwork, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, name string, vnet armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error)
	Delete(ctx context.Context, resourceGroup, name string) error
}

type subnetsAPI interface {
	Get(ctx context.Context, resourceGroup, vnetName, name string) (armnetwork.Subnet, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, vnetName, name string, subnet armnetwork.Subnet) (armnetwork.Subnet, error)
}

type securityGroupsAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.SecurityGroup, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, name string, nsg armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error)
	Delete(ctx context.Context, resourceGroup, name string) error
}

type publicIPsAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.PublicIPAddress, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, name string, pip armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error)
	Delete(ctx context.Context, resourceGroup, name string) error
}

type interfacesAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.Interface, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, name string, nic armnetwork.Interface) (armnetwork.Interface, error)
}

type virtualMachinesAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armcompute.VirtualMachine, error)
	CreateOrUpdate(ctx context.Context, resourceGroup, name string, vm armcompute.VirtualMachine) error
	Delete(ctx context.Context, resourceGroup, name string) error
}

type sshKeysAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armcompute.SSHPublicKeyResource, error)
	Create(ctx context.Context, resourceGroup, name string, key armcompute.SSHPublicKeyResource) error
	Delete(ctx context.Context, resourceGroup, name string) error
}

type groupsClient struct {
	raw *armresources.ResourceGroupsClient
}

func (c groupsClient) CreateOrUpdate(ctx context.Context, name string, group armresources.ResourceGroup) error {
	_, err := c.raw.CreateOrUpdate(ctx, name, group, nil)
	return err
}

func (c groupsClient) Delete(ctx context.Context, name string) error {
	poller, err := c.raw.BeginDelete(ctx, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

type vnetsClient struct {
	raw *armnetwork.VirtualNetworksClient
}

func (c vnetsClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.VirtualNetwork, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.VirtualNetwork, err
}

func (c vnetsClient) CreateOrUpdate(ctx context.Context, resourceGroup, name string, vnet armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error) {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, name, vnet, nil)
	if err != nil {
		return armnetwork.VirtualNetwork{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	return resp.VirtualNetwork, err
}

func (c vnetsClient) Delete(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.raw.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

type subnetsClient struct {
	raw *armnetwork.SubnetsClient
}

func (c subnetsClient) Get(ctx context.Context, resourceGroup, vnetName, name string) (armnetwork.Subnet, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, vnetName, name, nil)
	return resp.Subnet, err
}

func (c subnetsClient) CreateOrUpdate(ctx context.Context, resourceGroup, vnetName, name string, subnet armnetwork.Subnet) (armnetwork.Subnet, error) {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, vnetName, name, subnet, nil)
	if err != nil {
		return armnetwork.Subnet{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	return resp.Subnet, err
}

type nsgsClient struct {
	raw *armnetwork.SecurityGroupsClient
}

func (c nsgsClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.SecurityGroup, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.SecurityGroup, err
}

func (c nsgsClient) CreateOrUpdate(ctx context.Context, resourceGroup, name string, nsg armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error) {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, name, nsg, nil)
	if err != nil {
		return armnetwork.SecurityGroup{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	return resp.SecurityGroup, err
}

func (c nsgsClient) Delete(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.raw.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

type publicIPsClient struct {
	raw *armnetwork.PublicIPAddressesClient
}

func (c publicIPsClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.PublicIPAddress, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.PublicIPAddress, err
}

func (c publicIPsClient) CreateOrUpdate(ctx context.Context, resourceGroup, name string, pip armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error) {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, name, pip, nil)
	if err != nil {
		return armnetwork.PublicIPAddress{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	return resp.PublicIPAddress, err
}

func (c publicIPsClient) Delete(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.raw.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

type nicsClient struct {
	raw *armnetwork.InterfacesClient
}

func (c nicsClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.Interface, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.Interface, err
}

func (c nicsClient) CreateOrUpdate(ctx context.Context, resourceGroup, name string, nic armnetwork.Interface) (armnetwork.Interface, error) {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, name, nic, nil)
	if err != nil {
		return armnetwork.Interface{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	return resp.Interface, err
}

type vmsClient struct {
	raw *armcompute.VirtualMachinesClient
}

func (c vmsClient) Get(ctx context.Context, resourceGroup, name string) (armcompute.VirtualMachine, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.VirtualMachine, err
}

func (c vmsClient) CreateOrUpdate(ctx context.Context, resourceGroup, name string, vm armcompute.VirtualMachine) error {
	poller, err := c.raw.BeginCreateOrUpdate(ctx, resourceGroup, name, vm, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (c vmsClient) Delete(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.raw.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

type sshKeysClient struct {
	raw *armcompute.SSHPublicKeysClient
}

func (c sshKeysClient) Get(ctx context.Context, resourceGroup, name string) (armcompute.SSHPublicKeyResource, error) {
	resp, err := c.raw.Get(ctx, resourceGroup, name, nil)
	return resp.SSHPublicKeyResource, err
}

func (c sshKeysClient) Create(ctx context.Context, resourceGroup, name string, key armcompute.SSHPublicKeyResource) error {
	_, err := c.raw.Create(ctx, resourceGroup, name, key, nil)
	return err
}

func (c sshKeysClient) Delete(ctx context.Context, resourceGroup, name string) error {
	_, err := c.raw.Delete(ctx, resourceGroup, name, nil)
	return err
}
