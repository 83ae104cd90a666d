package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// api is the slice of the Hetzner Cloud API the provisioner uses.
// Get* methods return nil when the resource does not exist. Methods
// backed by long-running actions wait for them before returning.
type api interface {
	GetNetwork(ctx context.Context, name string) (*hcloud.Network, error)
	CreateNetwork(ctx context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, error)
	AddSubnet(ctx context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) error
	DeleteNetwork(ctx context.Context, network *hcloud.Network) error

	GetFirewall(ctx context.Context, name string) (*hcloud.Firewall, error)
	CreateFirewall(ctx context.Context, opts hcloud.FirewallCreateOpts) (*hcloud.Firewall, error)
	SetFirewallRules(ctx context.Context, fw *hcloud.Firewall, rules []hcloud.FirewallRule) error
	DeleteFirewall(ctx context.Context, fw *hcloud.Firewall) error

	GetSSHKey(ctx context.Context, name string) (*hcloud.SSHKey, error)
	CreateSSHKey(ctx context.Context, opts hcloud.SSHKeyCreateOpts) (*hcloud.SSHKey, error)
	DeleteSSHKey(ctx context.Context, key *hcloud.SSHKey) error

	GetServerType(ctx context.Context, name string) (*hcloud.ServerType, error)
	GetImageForArchitecture(ctx context.Context, name string, arch hcloud.Architecture) (*hcloud.Image, error)
	GetLocation(ctx context.Context, name string) (*hcloud.Location, error)

	GetServer(ctx context.Context, name string) (*hcloud.Server, error)
	CreateServer(ctx context.Context, opts hcloud.ServerCreateOpts) error
	DeleteServer(ctx context.Context, server *hcloud.Server) error
}
