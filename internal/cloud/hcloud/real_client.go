package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// realClient implements api against the live Hetzner Cloud API.
type realClient struct {
	client *hcloud.Client
}

func newRealClient(token string) *realClient {
	return &realClient{client: hcloud.NewClient(hcloud.WithToken(token))}
}

var _ api = (*realClient)(nil)

func (r *realClient) GetNetwork(ctx context.Context, name string) (*hcloud.Network, error) {
	network, _, err := r.client.Network.Get(ctx, name)
	return network, err
}

func (r *realClient) CreateNetwork(ctx context.Context, opts hcloud.NetworkCreateOpts) (*hcloud.Network, error) {
	network, _, err := r.client.Network.Create(ctx, opts)
	return network, err
}

func (r *realClient) AddSubnet(ctx context.Context, network *hcloud.Network, opts hcloud.NetworkAddSubnetOpts) error {
	action, _, err := r.client.Network.AddSubnet(ctx, network, opts)
	if err != nil {
		return err
	}
	return r.client.Action.WaitFor(ctx, action)
}

func (r *realClient) DeleteNetwork(ctx context.Context, network *hcloud.Network) error {
	_, err := r.client.Network.Delete(ctx, network)
	return err
}

func (r *realClient) GetFirewall(ctx context.Context, name string) (*hcloud.Firewall, error) {
	fw, _, err := r.client.Firewall.Get(ctx, name)
	return fw, err
}

func (r *realClient) CreateFirewall(ctx context.Context, opts hcloud.FirewallCreateOpts) (*hcloud.Firewall, error) {
	res, _, err := r.client.Firewall.Create(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := r.client.Action.WaitFor(ctx, res.Actions...); err != nil {
		return nil, err
	}
	return res.Firewall, nil
}

func (r *realClient) SetFirewallRules(ctx context.Context, fw *hcloud.Firewall, rules []hcloud.FirewallRule) error {
	actions, _, err := r.client.Firewall.SetRules(ctx, fw, hcloud.FirewallSetRulesOpts{Rules: rules})
	if err != nil {
		return err
	}
	return r.client.Action.WaitFor(ctx, actions...)
}

func (r *realClient) DeleteFirewall(ctx context.Context, fw *hcloud.Firewall) error {
	_, err := r.client.Firewall.Delete(ctx, fw)
	return err
}

func (r *realClient) GetSSHKey(ctx context.Context, name string) (*hcloud.SSHKey, error) {
	key, _, err := r.client.SSHKey.Get(ctx, name)
	return key, err
}

func (r *realClient) CreateSSHKey(ctx context.Context, opts hcloud.SSHKeyCreateOpts) (*hcloud.SSHKey, error) {
	key, _, err := r.client.SSHKey.Create(ctx, opts)
	return key, err
}

func (r *realClient) DeleteSSHKey(ctx context.Context, key *hcloud.SSHKey) error {
	_, err := r.client.SSHKey.Delete(ctx, key)
	return err
}

func (r *realClient) GetServerType(ctx context.Context, name string) (*hcloud.ServerType, error) {
	serverType, _, err := r.client.ServerType.Get(ctx, name)
	return serverType, err
}

func (r *realClient) GetImageForArchitecture(ctx context.Context, name string, arch hcloud.Architecture) (*hcloud.Image, error) {
	image, _, err := r.client.Image.GetForArchitecture(ctx, name, arch)
	return image, err
}

func (r *realClient) GetLocation(ctx context.Context, name string) (*hcloud.Location, error) {
	location, _, err := r.client.Location.Get(ctx, name)
	return location, err
}

func (r *realClient) GetServer(ctx context.Context, name string) (*hcloud.Server, error) {
	server, _, err := r.client.Server.Get(ctx, name)
	return server, err
}

func (r *realClient) CreateServer(ctx context.Context, opts hcloud.ServerCreateOpts) error {
	result, _, err := r.client.Server.Create(ctx, opts)
	if err != nil {
		return err
	}
	if err := r.client.Action.WaitFor(ctx, result.Action); err != nil {
		return err
	}
	return r.client.Action.WaitFor(ctx, result.NextActions...)
}

func (r *realClient) DeleteServer(ctx context.Context, server *hcloud.Server) error {
	result, _, err := r.client.Server.DeleteWithResult(ctx, server)
	if err != nil {
		return err
	}
	return r.client.Action.WaitFor(ctx, result.Action)
}
