package cloud

import "context"

// MockProvisioner is a test double for Provisioner. Each method
// delegates to its Func field when set and returns a benign default
// otherwise.
type MockProvisioner struct {
	EnsureNetworkFunc       func(ctx context.Context) (*Network, error)
	EnsureSecurityGroupFunc func(ctx context.Context, network *Network) (*SecurityGroup, error)
	EnsureKeyPairFunc       func(ctx context.Context, publicKey string) (string, error)
	CreateInstanceFunc      func(ctx context.Context, spec InstanceSpec) (*Instance, error)
	GetInstanceFunc         func(ctx context.Context) (*Instance, error)
	DeleteInstanceFunc      func(ctx context.Context) error
	DeleteKeyPairFunc       func(ctx context.Context) error
	DeleteSecurityGroupFunc func(ctx context.Context) error
	DeleteNetworkFunc       func(ctx context.Context) error
}

var _ Provisioner = (*MockProvisioner)(nil)

// EnsureNetwork mocks network provisioning.
func (m *MockProvisioner) EnsureNetwork(ctx context.Context) (*Network, error) {
	if m.EnsureNetworkFunc != nil {
		return m.EnsureNetworkFunc(ctx)
	}
	return &Network{ID: "mock-net", Name: "mock-net"}, nil
}

// EnsureSecurityGroup mocks security group provisioning.
func (m *MockProvisioner) EnsureSecurityGroup(ctx context.Context, network *Network) (*SecurityGroup, error) {
	if m.EnsureSecurityGroupFunc != nil {
		return m.EnsureSecurityGroupFunc(ctx, network)
	}
	return &SecurityGroup{ID: "mock-fw", Name: "mock-fw"}, nil
}

// EnsureKeyPair mocks key pair registration.
func (m *MockProvisioner) EnsureKeyPair(ctx context.Context, publicKey string) (string, error) {
	if m.EnsureKeyPairFunc != nil {
		return m.EnsureKeyPairFunc(ctx, publicKey)
	}
	return "mock-key", nil
}

// CreateInstance mocks instance creation.
func (m *MockProvisioner) CreateInstance(ctx context.Context, spec InstanceSpec) (*Instance, error) {
	if m.CreateInstanceFunc != nil {
		return m.CreateInstanceFunc(ctx, spec)
	}
	return &Instance{ID: "mock-vm", Name: "mock-vm", PublicIP: "203.0.113.10", PrivateIP: "10.80.1.10", State: "running"}, nil
}

// GetInstance mocks instance lookup.
func (m *MockProvisioner) GetInstance(ctx context.Context) (*Instance, error) {
	if m.GetInstanceFunc != nil {
		return m.GetInstanceFunc(ctx)
	}
	return nil, nil
}

// DeleteInstance mocks instance deletion.
func (m *MockProvisioner) DeleteInstance(ctx context.Context) error {
	if m.DeleteInstanceFunc != nil {
		return m.DeleteInstanceFunc(ctx)
	}
	return nil
}

// DeleteKeyPair mocks key pair deletion.
func (m *MockProvisioner) DeleteKeyPair(ctx context.Context) error {
	if m.DeleteKeyPairFunc != nil {
		return m.DeleteKeyPairFunc(ctx)
	}
	return nil
}

// DeleteSecurityGroup mocks security group deletion.
func (m *MockProvisioner) DeleteSecurityGroup(ctx context.Context) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx)
	}
	return nil
}

// DeleteNetwork mocks network deletion.
func (m *MockProvisioner) DeleteNetwork(ctx context.Context) error {
	if m.DeleteNetworkFunc != nil {
		return m.DeleteNetworkFunc(ctx)
	}
	return nil
}
