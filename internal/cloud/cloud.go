// Package cloud defines the provider-neutral provisioning interface and
// the resource types shared by all provider implementations.
//
// Each provider package (aws, azure, gcp, hcloud) implements
// Provisioner against its vendor SDK. All Ensure* methods follow the
// get-or-create contract: the resource is looked up by its
// deterministic tenant name first, and a create is issued only when the
// lookup finds nothing. Delete* methods are idempotent: deleting an
// absent resource succeeds.
package cloud

import "context"

// Network describes the tenant's VPC/VNet and its subnet.
type Network struct {
	// ID is the provider identifier (VPC ID, resource ID, self link).
	ID   string
	Name string
	CIDR string

	SubnetID   string
	SubnetCIDR string
}

// SecurityGroup describes the tenant's security group, network
// security group, or firewall.
type SecurityGroup struct {
	ID   string
	Name string
}

// InstanceSpec carries the dependencies resolved by the earlier
// provisioning steps into instance creation.
type InstanceSpec struct {
	Network       *Network
	SecurityGroup *SecurityGroup

	// KeyName is the provider-side key pair name returned by
	// EnsureKeyPair. Empty for providers that take the key inline.
	KeyName string

	// PublicKey is the OpenSSH authorized_keys line of the local key
	// pair, for providers that inject it directly (Azure os profile,
	// GCP instance metadata).
	PublicKey string
}

// Instance describes the deployed VM.
type Instance struct {
	ID        string
	Name      string
	PublicIP  string
	PrivateIP string
	State     string
}

// Provisioner is the provider-neutral deployment surface. All methods
// take a context; long-running provider operations are waited on before
// returning.
type Provisioner interface {
	// EnsureNetwork gets or creates the tenant network and subnet.
	EnsureNetwork(ctx context.Context) (*Network, error)

	// EnsureSecurityGroup gets or creates the tenant security group
	// allowing SSH from the configured source ranges.
	EnsureSecurityGroup(ctx context.Context, network *Network) (*SecurityGroup, error)

	// EnsureKeyPair registers the public key with the provider and
	// returns the provider-side key name. Providers without a key pair
	// resource return "" and pick the key up from InstanceSpec.
	EnsureKeyPair(ctx context.Context, publicKey string) (string, error)

	// CreateInstance gets or creates the deployment VM and returns it
	// with addresses populated.
	CreateInstance(ctx context.Context, spec InstanceSpec) (*Instance, error)

	// GetInstance returns the deployment VM, or nil if it does not exist.
	GetInstance(ctx context.Context) (*Instance, error)

	DeleteInstance(ctx context.Context) error
	DeleteKeyPair(ctx context.Context) error
	DeleteSecurityGroup(ctx context.Context) error
	DeleteNetwork(ctx context.Context) error
}
