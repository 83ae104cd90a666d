package azure

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// defaultImage is Canonical's Ubuntu 22.04 LTS marketplace image.
var defaultImage = armcompute.ImageReference{
	Publisher: to.Ptr("Canonical"),
	Offer:     to.Ptr("0001-com-ubuntu-server-jammy"),
	SKU:       to.Ptr("22_04-lts-gen2"),
	Version:   to.Ptr("latest"),
}

// CreateInstance gets or creates the deployment VM together with its
// public IP and network interface.
func (c *Client) CreateInstance(ctx context.Context, spec cloud.InstanceSpec) (*cloud.Instance, error) {
	existing, err := c.GetInstance(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	rg := c.resourceGroup()

	pipID, err := c.ensurePublicIP(ctx, rg)
	if err != nil {
		return nil, err
	}
	nicID, err := c.ensureNIC(ctx, rg, spec, pipID)
	if err != nil {
		return nil, err
	}

	image, err := c.imageReference()
	if err != nil {
		return nil, err
	}

	vmName := c.names.Instance()
	log.Printf("Creating virtual machine %s...", vmName)

	err = c.vms.CreateOrUpdate(ctx, rg, vmName, armcompute.VirtualMachine{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(c.cfg.MachineType)),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: image,
				OSDisk: &armcompute.OSDisk{
					Name:         to.Ptr(c.names.OSDisk()),
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					DeleteOption: to.Ptr(armcompute.DiskDeleteOptionTypesDelete),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(armcompute.StorageAccountTypesStandardLRS),
					},
				},
			},
			OSProfile: &armcompute.OSProfile{
				ComputerName:  to.Ptr(vmName),
				AdminUsername: to.Ptr(c.cfg.AdminUser),
				LinuxConfiguration: &armcompute.LinuxConfiguration{
					DisablePasswordAuthentication: to.Ptr(true),
					SSH: &armcompute.SSHConfiguration{
						PublicKeys: []*armcompute.SSHPublicKey{{
							Path:    to.Ptr(fmt.Sprintf("/home/%s/.ssh/authorized_keys", c.cfg.AdminUser)),
							KeyData: to.Ptr(spec.PublicKey),
						}},
					},
				},
			},
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{{
					ID: to.Ptr(nicID),
					Properties: &armcompute.NetworkInterfaceReferenceProperties{
						Primary:      to.Ptr(true),
						DeleteOption: to.Ptr(armcompute.DeleteOptionsDelete),
					},
				}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual machine: %w", err)
	}

	return c.GetInstance(ctx)
}

// GetInstance returns the deployment VM, or nil when it does not
// exist. Addresses are read from the tenant public IP and NIC.
func (c *Client) GetInstance(ctx context.Context) (*cloud.Instance, error) {
	rg := c.resourceGroup()
	vmName := c.names.Instance()

	vm, err := c.vms.Get(ctx, rg, vmName)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get virtual machine: %w", err)
	}

	inst := &cloud.Instance{
		ID:   deref(vm.ID),
		Name: vmName,
	}
	if vm.Properties != nil {
		inst.State = deref(vm.Properties.ProvisioningState)
	}

	if pip, err := c.publicIPs.Get(ctx, rg, c.names.PublicIP()); err == nil {
		if pip.Properties != nil {
			inst.PublicIP = deref(pip.Properties.IPAddress)
		}
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get public IP: %w", err)
	}

	if nic, err := c.nics.Get(ctx, rg, c.names.NIC()); err == nil {
		if nic.Properties != nil {
			for _, ipc := range nic.Properties.IPConfigurations {
				if ipc.Properties != nil && ipc.Properties.PrivateIPAddress != nil {
					inst.PrivateIP = *ipc.Properties.PrivateIPAddress
					break
				}
			}
		}
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to get network interface: %w", err)
	}

	return inst, nil
}

// DeleteInstance removes the deployment VM. The OS disk and NIC are
// deleted with it via their delete options; the public IP is removed
// explicitly. Absence is success.
func (c *Client) DeleteInstance(ctx context.Context) error {
	rg := c.resourceGroup()

	if err := c.vms.Delete(ctx, rg, c.names.Instance()); err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("failed to delete virtual machine: %w", err)
		}
	} else {
		log.Printf("Deleted virtual machine %s", c.names.Instance())
	}

	if err := c.publicIPs.Delete(ctx, rg, c.names.PublicIP()); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete public IP: %w", err)
	}
	return nil
}

func (c *Client) ensurePublicIP(ctx context.Context, rg string) (string, error) {
	name := c.names.PublicIP()

	existing, err := c.publicIPs.Get(ctx, rg, name)
	if err == nil {
		return deref(existing.ID), nil
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to get public IP: %w", err)
	}

	created, err := c.publicIPs.CreateOrUpdate(ctx, rg, name, armnetwork.PublicIPAddress{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
		SKU: &armnetwork.PublicIPAddressSKU{
			Name: to.Ptr(armnetwork.PublicIPAddressSKUNameStandard),
		},
		Properties: &armnetwork.PublicIPAddressPropertiesFormat{
			PublicIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodStatic),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create public IP: %w", err)
	}
	return deref(created.ID), nil
}

func (c *Client) ensureNIC(ctx context.Context, rg string, spec cloud.InstanceSpec, pipID string) (string, error) {
	name := c.names.NIC()

	existing, err := c.nics.Get(ctx, rg, name)
	if err == nil {
		return deref(existing.ID), nil
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to get network interface: %w", err)
	}

	created, err := c.nics.CreateOrUpdate(ctx, rg, name, armnetwork.Interface{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
		Properties: &armnetwork.InterfacePropertiesFormat{
			NetworkSecurityGroup: &armnetwork.SecurityGroup{
				ID: to.Ptr(spec.SecurityGroup.ID),
			},
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{{
				Name: to.Ptr("primary"),
				Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{
					Subnet:                    &armnetwork.Subnet{ID: to.Ptr(spec.Network.SubnetID)},
					PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
					PublicIPAddress:           &armnetwork.PublicIPAddress{ID: to.Ptr(pipID)},
				},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create network interface: %w", err)
	}
	return deref(created.ID), nil
}

// imageReference resolves the marketplace image. A configured image of
// the form publisher:offer:sku:version overrides the Ubuntu default.
func (c *Client) imageReference() (*armcompute.ImageReference, error) {
	if c.cfg.Image == "" {
		ref := defaultImage
		return &ref, nil
	}

	parts := strings.Split(c.cfg.Image, ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid azure image %q, want publisher:offer:sku:version", c.cfg.Image)
	}
	return &armcompute.ImageReference{
		Publisher: to.Ptr(parts[0]),
		Offer:     to.Ptr(parts[1]),
		SKU:       to.Ptr(parts[2]),
		Version:   to.Ptr(parts[3]),
	}, nil
}
