// Package naming provides the deterministic resource naming conventions
// for tenant deployments.
//
// All cloud resources a deployment touches are named purely from the
// tenant identifier. Running the same configuration twice therefore
// always addresses the same resources, which is what makes the
// get-or-create provisioning flow idempotent.
package naming

import "fmt"

// Names derives resource names for a single tenant.
type Names struct {
	tenant string
}

// NewNames creates a Names helper for the given tenant.
func NewNames(tenant string) *Names {
	return &Names{tenant: tenant}
}

// Tenant returns the tenant identifier itself.
func (n *Names) Tenant() string {
	return n.tenant
}

// Network returns the name of the tenant's VPC/VNet.
// Pattern: ${tenant}-net
func (n *Names) Network() string {
	return fmt.Sprintf("%s-net", n.tenant)
}

// Subnet returns the name of the tenant's subnet.
// Pattern: ${tenant}-subnet
func (n *Names) Subnet() string {
	return fmt.Sprintf("%s-subnet", n.tenant)
}

// SecurityGroup returns the name of the tenant's security group,
// network security group, or firewall, depending on provider.
// Pattern: ${tenant}-fw
func (n *Names) SecurityGroup() string {
	return fmt.Sprintf("%s-fw", n.tenant)
}

// KeyPair returns the name under which the SSH public key is registered.
// Pattern: ${tenant}-key
func (n *Names) KeyPair() string {
	return fmt.Sprintf("%s-key", n.tenant)
}

// Instance returns the name of the deployment's VM.
// Pattern: ${tenant}-vm
func (n *Names) Instance() string {
	return fmt.Sprintf("%s-vm", n.tenant)
}

// ResourceGroup returns the name of the Azure resource group.
// Pattern: ${tenant}-rg
func (n *Names) ResourceGroup() string {
	return fmt.Sprintf("%s-rg", n.tenant)
}

// InstanceProfile returns the name of the AWS IAM instance profile
// and its backing role.
// Pattern: ${tenant}-profile
func (n *Names) InstanceProfile() string {
	return fmt.Sprintf("%s-profile", n.tenant)
}

// PublicIP returns the name of the Azure public IP address resource.
// Pattern: ${tenant}-pip
func (n *Names) PublicIP() string {
	return fmt.Sprintf("%s-pip", n.tenant)
}

// NIC returns the name of the Azure network interface.
// Pattern: ${tenant}-nic
func (n *Names) NIC() string {
	return fmt.Sprintf("%s-nic", n.tenant)
}

// OSDisk returns the name of the Azure OS disk.
// Pattern: ${tenant}-osdisk
func (n *Names) OSDisk() string {
	return fmt.Sprintf("%s-osdisk", n.tenant)
}

// KeyFile returns the local path of the generated private key.
// Pattern: ${tenant}-key.pem
func (n *Names) KeyFile() string {
	return fmt.Sprintf("%s-key.pem", n.tenant)
}

// OutputsFile returns the local path of the deployment outputs file.
func (n *Names) OutputsFile() string {
	return "skybox-outputs.yaml"
}
