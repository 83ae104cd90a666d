package gcp

import (
	"context"
	"net/http"

	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/api/googleapi"
)

func notFoundErr() error {
	return &googleapi.Error{Code: http.StatusNotFound, Message: "not found"}
}

// The fakes implement the api interfaces for tests. Get* methods
// default to 404 and the mutating methods to success.

type fakeNetworks struct {
	GetFunc    func(ctx context.Context, req *computepb.GetNetworkRequest) (*computepb.Network, error)
	InsertFunc func(ctx context.Context, req *computepb.InsertNetworkRequest) error
	DeleteFunc func(ctx context.Context, req *computepb.DeleteNetworkRequest) error
}

var _ networksAPI = (*fakeNetworks)(nil)

func (f *fakeNetworks) Get(ctx context.Context, req *computepb.GetNetworkRequest) (*computepb.Network, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, req)
	}
	return nil, notFoundErr()
}

func (f *fakeNetworks) Insert(ctx context.Context, req *computepb.InsertNetworkRequest) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, req)
	}
	return nil
}

func (f *fakeNetworks) Delete(ctx context.Context, req *computepb.DeleteNetworkRequest) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, req)
	}
	return nil
}

type fakeSubnetworks struct {
	GetFunc    func(ctx context.Context, req *computepb.GetSubnetworkRequest) (*computepb.Subnetwork, error)
	InsertFunc func(ctx context.Context, req *computepb.InsertSubnetworkRequest) error
	DeleteFunc func(ctx context.Context, req *computepb.DeleteSubnetworkRequest) error
}

var _ subnetworksAPI = (*fakeSubnetworks)(nil)

func (f *fakeSubnetworks) Get(ctx context.Context, req *computepb.GetSubnetworkRequest) (*computepb.Subnetwork, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, req)
	}
	return nil, notFoundErr()
}

func (f *fakeSubnetworks) Insert(ctx context.Context, req *computepb.InsertSubnetworkRequest) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, req)
	}
	return nil
}

func (f *fakeSubnetworks) Delete(ctx context.Context, req *computepb.DeleteSubnetworkRequest) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, req)
	}
	return nil
}

type fakeFirewalls struct {
	GetFunc    func(ctx context.Context, req *computepb.GetFirewallRequest) (*computepb.Firewall, error)
	InsertFunc func(ctx context.Context, req *computepb.InsertFirewallRequest) error
	DeleteFunc func(ctx context.Context, req *computepb.DeleteFirewallRequest) error
}

var _ firewallsAPI = (*fakeFirewalls)(nil)

func (f *fakeFirewalls) Get(ctx context.Context, req *computepb.GetFirewallRequest) (*computepb.Firewall, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, req)
	}
	return nil, notFoundErr()
}

func (f *fakeFirewalls) Insert(ctx context.Context, req *computepb.InsertFirewallRequest) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, req)
	}
	return nil
}

func (f *fakeFirewalls) Delete(ctx context.Context, req *computepb.DeleteFirewallRequest) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, req)
	}
	return nil
}

type fakeInstances struct {
	GetFunc    func(ctx context.Context, req *computepb.GetInstanceRequest) (*computepb.Instance, error)
	InsertFunc func(ctx context.Context, req *computepb.InsertInstanceRequest) error
	DeleteFunc func(ctx context.Context, req *computepb.DeleteInstanceRequest) error
}

var _ instancesAPI = (*fakeInstances)(nil)

func (f *fakeInstances) Get(ctx context.Context, req *computepb.GetInstanceRequest) (*computepb.Instance, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, req)
	}
	return nil, notFoundErr()
}

func (f *fakeInstances) Insert(ctx context.Context, req *computepb.InsertInstanceRequest) error {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, req)
	}
	return nil
}

func (f *fakeInstances) Delete(ctx context.Context, req *computepb.DeleteInstanceRequest) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, req)
	}
	return nil
}
