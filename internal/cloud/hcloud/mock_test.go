package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// fakeAPI implements api for tests. Each method delegates to its Func
// field when set; Get* methods default to "absent" and the rest to
// success.
type fakeAPI struct {
	GetNetworkFunc    func(ctx context.Context, name string) (*hcloud.Network, error)
	CreateNetworkFunc func(ctx context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, error)
	AddSubnetFunc     func(ctx context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) error
	DeleteNetworkFunc func(ctx context.Context, network *hcloud.Network) error

	GetFirewallFunc      func(ctx context.Context, name string) (*hcloud.Firewall, error)
	CreateFirewallFunc   func(ctx context.Context, opts hcloud.FirewallCreateOpts) (*hcloud.Firewall, error)
	SetFirewallRulesFunc func(ctx context.Context, fw *hcloud.Firewall, rules []hcloud.FirewallRule) error
	DeleteFirewallFunc   func(ctx context.Context, fw *hcloud.Firewall) error

	GetSSHKeyFunc    func(ctx context.Context, name string) (*hcloud.SSHKey, error)
	CreateSSHKeyFunc func(ctx context.Context, opts hcloud.SSHKeyCreateOpts) (*hcloud.SSHKey, error)
	DeleteSSHKeyFunc func(ctx context.Context, key *hcloud.SSHKey) error

	GetServerTypeFunc           func(ctx context.Context, name string) (*hcloud.ServerType, error)
	GetImageForArchitectureFunc func(ctx context.Context, name string, arch hcloud.Architecture) (*hcloud.Image, error)
	GetLocationFunc             func(ctx context.Context, name string) (*hcloud.Location, error)

	GetServerFunc    func(ctx context.Context, name string) (*hcloud.Server, error)
	CreateServerFunc func(ctx context.Context, opts hcloud.ServerCreateOpts) error
	DeleteServerFunc func(ctx context.Context, server *hcloud.Server) error
}

var _ api = (*fakeAPI)(nil)

func (f *fakeAPI) GetNetwork(ctx context.Context, name string) (*hcloud.Network, error) {
	if f.GetNetworkFunc != nil {
		return f.GetNetworkFunc(ctx, name)
	}
	return nil, nil
}

func (f *fakeAPI) CreateNetwork(ctx context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, error) {
	if f.CreateNetworkFunc != nil {
		return f.CreateNetworkFunc(ctx, opts)
	}
	return &hcloud.Network{ID: 1, Name: opts.Name, IPRange: opts.IPRange}, nil
}

func (f *fakeAPI) AddSubnet(ctx context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) error {
	if f.AddSubnetFunc != nil {
		return f.AddSubnetFunc(ctx, network, opts)
	}
	return nil
}

func (f *fakeAPI) DeleteNetwork(ctx context.Context, network *hcloud.Network) error {
	if f.DeleteNetworkFunc != nil {
		return f.DeleteNetworkFunc(ctx, network)
	}
	return nil
}

func (f *fakeAPI) GetFirewall(ctx context.Context, name string) (*hcloud.Firewall, error) {
	if f.GetFirewallFunc != nil {
		return f.GetFirewallFunc(ctx, name)
	}
	return nil, nil
}

func (f *fakeAPI) CreateFirewall(ctx context.Context, opts hcloud.FirewallCreateOpts) (*hcloud.Firewall, error) {
	if f.CreateFirewallFunc != nil {
		return f.CreateFirewallFunc(ctx, opts)
	}
	return &hcloud.Firewall{ID: 2, Name: opts.Name}, nil
}

func (f *fakeAPI) SetFirewallRules(ctx context.Context, fw *hcloud.Firewall, rules []hcloud.FirewallRule) error {
	if f.SetFirewallRulesFunc != nil {
		return f.SetFirewallRulesFunc(ctx, fw, rules)
	}
	return nil
}

func (f *fakeAPI) DeleteFirewall(ctx context.Context, fw *hcloud.Firewall) error {
	if f.DeleteFirewallFunc != nil {
		return f.DeleteFirewallFunc(ctx, fw)
	}
	return nil
}

func (f *fakeAPI) GetSSHKey(ctx context.Context, name string) (*hcloud.SSHKey, error) {
	if f.GetSSHKeyFunc != nil {
		return f.GetSSHKeyFunc(ctx, name)
	}
	return nil, nil
}

func (f *fakeAPI) CreateSSHKey(ctx context.Context, opts hcloud.SSHKeyCreateOpts) (*hcloud.SSHKey, error) {
	if f.CreateSSHKeyFunc != nil {
		return f.CreateSSHKeyFunc(ctx, opts)
	}
	return &hcloud.SSHKey{ID: 3, Name: opts.Name}, nil
}

func (f *fakeAPI) DeleteSSHKey(ctx context.Context, key *hcloud.SSHKey) error {
	if f.DeleteSSHKeyFunc != nil {
		return f.DeleteSSHKeyFunc(ctx, key)
	}
	return nil
}

func (f *fakeAPI) GetServerType(ctx context.Context, name string) (*hcloud.ServerType, error) {
	if f.GetServerTypeFunc != nil {
		return f.GetServerTypeFunc(ctx, name)
	}
	return &hcloud.ServerType{Name: name, Architecture: hcloud.ArchitectureX86}, nil
}

func (f *fakeAPI) GetImageForArchitecture(ctx context.Context, name string, arch hcloud.Architecture) (*hcloud.Image, error) {
	if f.GetImageForArchitectureFunc != nil {
		return f.GetImageForArchitectureFunc(ctx, name, arch)
	}
	return &hcloud.Image{ID: 4, Name: name}, nil
}

func (f *fakeAPI) GetLocation(ctx context.Context, name string) (*hcloud.Location, error) {
	if f.GetLocationFunc != nil {
		return f.GetLocationFunc(ctx, name)
	}
	return &hcloud.Location{Name: name}, nil
}

func (f *fakeAPI) GetServer(ctx context.Context, name string) (*hcloud.Server, error) {
	if f.GetServerFunc != nil {
		return f.GetServerFunc(ctx, name)
	}
	return nil, nil
}

func (f *fakeAPI) CreateServer(ctx context.Context, opts hcloud.ServerCreateOpts) error {
	if f.CreateServerFunc != nil {
		return f.CreateServerFunc(ctx, opts)
	}
	return nil
}

func (f *fakeAPI) DeleteServer(ctx context.Context, server *hcloud.Server) error {
	if f.DeleteServerFunc != nil {
		return f.DeleteServerFunc(ctx, server)
	}
	return nil
}
