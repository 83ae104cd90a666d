package gcp

import (
	"context"

	compute "cloud.google.com/go/compute/apiv1"
	"cloud.google.com/go/compute/apiv1/computepb"
)

// The api interfaces are the slice of the Compute Engine API the
// provisioner uses. Insert and Delete wait for their zonal/global
// operation before returning.

type networksAPI interface {
	Get(ctx context.Context, req *computepb.GetNetworkRequest) (*computepb.Network, error)
	Insert(ctx context.Context, req *computepb.InsertNetworkRequest) error
	Delete(ctx context.Context, req *computepb.DeleteNetworkRequest) error
}

type subnetworksAPI interface {
	Get(ctx context.Context, req *computepb.GetSubnetworkRequest) (*computepb.Subnetwork, error)
	Insert(ctx context.Context, req *computepb.InsertSubnetworkRequest) error
	Delete(ctx context.Context, req *computepb.DeleteSubnetworkRequest) error
}

type firewallsAPI interface {
	Get(ctx context.Context, req *computepb.GetFirewallRequest) (*computepb.Firewall, error)
	Insert(ctx context.Context, req *computepb.InsertFirewallRequest) error
	Delete(ctx context.Context, req *computepb.DeleteFirewallRequest) error
}

type instancesAPI interface {
	Get(ctx context.Context, req *computepb.GetInstanceRequest) (*computepb.Instance, error)
	Insert(ctx context.Context, req *computepb.InsertInstanceRequest) error
	Delete(ctx context.Context, req *computepb.DeleteInstanceRequest) error
}

type networksClient struct {
	raw *compute.NetworksClient
}

func (c networksClient) Get(ctx context.Context, req *computepb.GetNetworkRequest) (*computepb.Network, error) {
	return c.raw.Get(ctx, req)
}

func (c networksClient) Insert(ctx context.Context, req *computepb.InsertNetworkRequest) error {
	op, err := c.raw.Insert(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

func (c networksClient) Delete(ctx context.Context, req *computepb.DeleteNetworkRequest) error {
	op, err := c.raw.Delete(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

type subnetworksClient struct {
	raw *compute.SubnetworksClient
}

func (c subnetworksClient) Get(ctx context.Context, req *computepb.GetSubnetworkRequest) (*computepb.Subnetwork, error) {
	return c.raw.Get(ctx, req)
}

func (c subnetworksClient) Insert(ctx context.Context, req *computepb.InsertSubnetworkRequest) error {
	op, err := c.raw.Insert(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

func (c subnetworksClient) Delete(ctx context.Context, req *computepb.DeleteSubnetworkRequest) error {
	op, err := c.raw.Delete(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

type firewallsClient struct {
	raw *compute.FirewallsClient
}

func (c firewallsClient) Get(ctx context.Context, req *computepb.GetFirewallRequest) (*computepb.Firewall, error) {
	return c.raw.Get(ctx, req)
}

func (c firewallsClient) Insert(ctx context.Context, req *computepb.InsertFirewallRequest) error {
	op, err := c.raw.Insert(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

func (c firewallsClient) Delete(ctx context.Context, req *computepb.DeleteFirewallRequest) error {
	op, err := c.raw.Delete(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

type instancesClient struct {
	raw *compute.InstancesClient
}

func (c instancesClient) Get(ctx context.Context, req *computepb.GetInstanceRequest) (*computepb.Instance, error) {
	return c.raw.Get(ctx, req)
}

func (c instancesClient) Insert(ctx context.Context, req *computepb.InsertInstanceRequest) error {
	op, err := c.raw.Insert(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}

func (c instancesClient) Delete(ctx context.Context, req *computepb.DeleteInstanceRequest) error {
	op, err := c.raw.Delete(ctx, req)
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}
