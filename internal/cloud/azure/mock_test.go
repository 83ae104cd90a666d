package azure

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// Fakes for the ARM api interfaces. Each method delegates to an
// optional Func field; unset Get funcs report not-found and unset
// mutation funcs succeed, so tests only wire what they assert on.

func notFoundErr() error {
	return &azcore.ResponseError{StatusCode: http.StatusNotFound}
}

type fakeGroups struct {
	CreateOrUpdateFunc func(ctx context.Context, name string, group armresources.ResourceGroup) error
	DeleteFunc         func(ctx context.Context, name string) error
}

func (f *fakeGroups) CreateOrUpdate(ctx context.Context, name string, group armresources.ResourceGroup) error {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, name, group)
	}
	return nil
}

func (f *fakeGroups) Delete(ctx context.Context, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, name)
	}
	return nil
}

type fakeVNets struct {
	GetFunc            func(ctx context.Context, rg, name string) (armnetwork.VirtualNetwork, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, name string, vnet armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error)
	DeleteFunc         func(ctx context.Context, rg, name string) error
}

func (f *fakeVNets) Get(ctx context.Context, rg, name string) (armnetwork.VirtualNetwork, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armnetwork.VirtualNetwork{}, notFoundErr()
}

func (f *fakeVNets) CreateOrUpdate(ctx context.Context, rg, name string, vnet armnetwork.VirtualNetwork) (armnetwork.VirtualNetwork, error) {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, name, vnet)
	}
	vnet.ID = strPtr("/subscriptions/s/resourceGroups/" + rg + "/providers/Microsoft.Network/virtualNetworks/" + name)
	vnet.Name = &name
	return vnet, nil
}

func (f *fakeVNets) Delete(ctx context.Context, rg, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, rg, name)
	}
	return nil
}

type fakeSubnets struct {
	GetFunc            func(ctx context.Context, rg, vnetName, name string) (armnetwork.Subnet, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, vnetName, name string, subnet armnetwork.Subnet) (armnetwork.Subnet, error)
}

func (f *fakeSubnets) Get(ctx context.Context, rg, vnetName, name string) (armnetwork.Subnet, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, vnetName, name)
	}
	return armnetwork.Subnet{}, notFoundErr()
}

func (f *fakeSubnets) CreateOrUpdate(ctx context.Context, rg, vnetName, name string, subnet armnetwork.Subnet) (armnetwork.Subnet, error) {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, vnetName, name, subnet)
	}
	subnet.ID = strPtr("/subscriptions/s/resourceGroups/" + rg + "/providers/Microsoft.Network/virtualNetworks/" + vnetName + "/subnets/" + name)
	subnet.Name = &name
	return subnet, nil
}

type fakeNSGs struct {
	GetFunc            func(ctx context.Context, rg, name string) (armnetwork.SecurityGroup, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, name string, nsg armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error)
	DeleteFunc         func(ctx context.Context, rg, name string) error
}

func (f *fakeNSGs) Get(ctx context.Context, rg, name string) (armnetwork.SecurityGroup, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armnetwork.SecurityGroup{}, notFoundErr()
}

func (f *fakeNSGs) CreateOrUpdate(ctx context.Context, rg, name string, nsg armnetwork.SecurityGroup) (armnetwork.SecurityGroup, error) {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, name, nsg)
	}
	nsg.ID = strPtr("/subscriptions/s/resourceGroups/" + rg + "/providers/Microsoft.Network/networkSecurityGroups/" + name)
	nsg.Name = &name
	return nsg, nil
}

func (f *fakeNSGs) Delete(ctx context.Context, rg, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, rg, name)
	}
	return nil
}

type fakePublicIPs struct {
	GetFunc            func(ctx context.Context, rg, name string) (armnetwork.PublicIPAddress, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, name string, pip armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error)
	DeleteFunc         func(ctx context.Context, rg, name string) error
}

func (f *fakePublicIPs) Get(ctx context.Context, rg, name string) (armnetwork.PublicIPAddress, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armnetwork.PublicIPAddress{}, notFoundErr()
}

func (f *fakePublicIPs) CreateOrUpdate(ctx context.Context, rg, name string, pip armnetwork.PublicIPAddress) (armnetwork.PublicIPAddress, error) {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, name, pip)
	}
	pip.ID = strPtr("/subscriptions/s/resourceGroups/" + rg + "/providers/Microsoft.Network/publicIPAddresses/" + name)
	pip.Name = &name
	return pip, nil
}

func (f *fakePublicIPs) Delete(ctx context.Context, rg, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, rg, name)
	}
	return nil
}

type fakeNICs struct {
	GetFunc            func(ctx context.Context, rg, name string) (armnetwork.Interface, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, name string, nic armnetwork.Interface) (armnetwork.Interface, error)
}

func (f *fakeNICs) Get(ctx context.Context, rg, name string) (armnetwork.Interface, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armnetwork.Interface{}, notFoundErr()
}

func (f *fakeNICs) CreateOrUpdate(ctx context.Context, rg, name string, nic armnetwork.Interface) (armnetwork.Interface, error) {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, name, nic)
	}
	nic.ID = strPtr("/subscriptions/s/resourceGroups/" + rg + "/providers/Microsoft.Network/networkInterfaces/" + name)
	nic.Name = &name
	return nic, nil
}

type fakeVMs struct {
	GetFunc            func(ctx context.Context, rg, name string) (armcompute.VirtualMachine, error)
	CreateOrUpdateFunc func(ctx context.Context, rg, name string, vm armcompute.VirtualMachine) error
	DeleteFunc         func(ctx context.Context, rg, name string) error
}

func (f *fakeVMs) Get(ctx context.Context, rg, name string) (armcompute.VirtualMachine, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armcompute.VirtualMachine{}, notFoundErr()
}

func (f *fakeVMs) CreateOrUpdate(ctx context.Context, rg, name string, vm armcompute.VirtualMachine) error {
	if f.CreateOrUpdateFunc != nil {
		return f.CreateOrUpdateFunc(ctx, rg, name, vm)
	}
	return nil
}

func (f *fakeVMs) Delete(ctx context.Context, rg, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, rg, name)
	}
	return nil
}

type fakeSSHKeys struct {
	GetFunc    func(ctx context.Context, rg, name string) (armcompute.SSHPublicKeyResource, error)
	CreateFunc func(ctx context.Context, rg, name string, key armcompute.SSHPublicKeyResource) error
	DeleteFunc func(ctx context.Context, rg, name string) error
}

func (f *fakeSSHKeys) Get(ctx context.Context, rg, name string) (armcompute.SSHPublicKeyResource, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, rg, name)
	}
	return armcompute.SSHPublicKeyResource{}, notFoundErr()
}

func (f *fakeSSHKeys) Create(ctx context.Context, rg, name string, key armcompute.SSHPublicKeyResource) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, rg, name, key)
	}
	return nil
}

func (f *fakeSSHKeys) Delete(ctx context.Context, rg, name string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, rg, name)
	}
	return nil
}

func strPtr(s string) *string { return &s }

var (
	_ resourceGroupsAPI  = (*fakeGroups)(nil)
	_ virtualNetworksAPI = (*fakeVNets)(nil)
	_ subnetsAPI         = (*fakeSubnets)(nil)
	_ securityGroupsAPI  = (*fakeNSGs)(nil)
	_ publicIPsAPI       = (*fakePublicIPs)(nil)
	_ interfacesAPI      = (*fakeNICs)(nil)
	_ virtualMachinesAPI = (*fakeVMs)(nil)
	_ sshKeysAPI         = (*fakeSSHKeys)(nil)
)
