// Package provision orchestrates tenant deployments. A Deployer walks
// the resource graph in dependency order: key material first, then
// network, security group, registered key, and finally the instance.
// Every step is get-or-create, so re-running a deployment converges on
// the existing resources instead of duplicating them.
package provision

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/keygen"
	"github.com/skybox-cli/skybox/internal/naming"
)

// Deployer provisions and destroys a single tenant deployment.
type Deployer struct {
	provisioner cloud.Provisioner
	cfg         *config.Config
	names       *naming.Names
}

// NewDeployer creates a Deployer on top of the given provisioner.
func NewDeployer(p cloud.Provisioner, cfg *config.Config) *Deployer {
	return &Deployer{
		provisioner: p,
		cfg:         cfg,
		names:       naming.NewNames(cfg.Tenant),
	}
}

// Deploy provisions the full deployment and returns its outputs. The
// private key is generated next to the config on first run and reused
// afterwards, so the registered public key never changes for a tenant.
func (d *Deployer) Deploy(ctx context.Context) (*Outputs, error) {
	key, err := keygen.LoadOrGenerate(d.names.KeyFile(), d.cfg.Key.Type, d.cfg.Key.Bits, d.cfg.Tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SSH key: %w", err)
	}
	publicKey := strings.TrimSpace(string(key.PublicKey))

	network, err := d.provisioner.EnsureNetwork(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure network: %w", err)
	}

	sg, err := d.provisioner.EnsureSecurityGroup(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure security group: %w", err)
	}

	keyName, err := d.provisioner.EnsureKeyPair(ctx, publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure key pair: %w", err)
	}

	instance, err := d.provisioner.CreateInstance(ctx, cloud.InstanceSpec{
		Network:       network,
		SecurityGroup: sg,
		KeyName:       keyName,
		PublicKey:     publicKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	outputs := d.buildOutputs(network, sg, keyName, instance)
	if err := outputs.Write(d.names.OutputsFile()); err != nil {
		return nil, fmt.Errorf("failed to write outputs: %w", err)
	}

	log.Printf("Deployment complete: %s (%s)", instance.Name, instance.PublicIP)
	return outputs, nil
}

// Outputs queries the live deployment and returns its outputs without
// creating anything. Returns an error when the instance is absent.
func (d *Deployer) Outputs(ctx context.Context) (*Outputs, error) {
	instance, err := d.provisioner.GetInstance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	if instance == nil {
		return nil, fmt.Errorf("no deployment found for tenant %s", d.cfg.Tenant)
	}
	return d.buildOutputs(nil, nil, d.names.KeyPair(), instance), nil
}

// Destroy tears the deployment down. The network and security group are
// tenant-shared and survive unless purge is set.
func (d *Deployer) Destroy(ctx context.Context, purge bool) error {
	log.Printf("Destroying tenant %s deployment", d.cfg.Tenant)

	if err := d.provisioner.DeleteInstance(ctx); err != nil {
		return fmt.Errorf("failed to delete instance: %w", err)
	}
	if err := d.provisioner.DeleteKeyPair(ctx); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}

	if !purge {
		log.Printf("Keeping network and security group (use --purge to remove them)")
		return nil
	}

	if err := d.provisioner.DeleteSecurityGroup(ctx); err != nil {
		return fmt.Errorf("failed to delete security group: %w", err)
	}
	if err := d.provisioner.DeleteNetwork(ctx); err != nil {
		return fmt.Errorf("failed to delete network: %w", err)
	}

	RemoveOutputs(d.names.OutputsFile())
	return nil
}

func (d *Deployer) buildOutputs(network *cloud.Network, sg *cloud.SecurityGroup, keyName string, instance *cloud.Instance) *Outputs {
	out := &Outputs{
		Tenant:     d.cfg.Tenant,
		Provider:   d.cfg.Provider,
		Region:     d.cfg.Region,
		InstanceID: instance.ID,
		Instance:   instance.Name,
		PublicIP:   instance.PublicIP,
		PrivateIP:  instance.PrivateIP,
		State:      instance.State,
		KeyName:    keyName,
		KeyFile:    d.names.KeyFile(),
		AdminUser:  d.cfg.AdminUser,
	}
	if network != nil {
		out.NetworkID = network.ID
		out.SubnetID = network.SubnetID
	}
	if sg != nil {
		out.SecurityGroupID = sg.ID
	}
	if out.PublicIP != "" {
		out.SSHCommand = fmt.Sprintf("ssh -i %s %s@%s", out.KeyFile, out.AdminUser, out.PublicIP)
	}
	return out
}
