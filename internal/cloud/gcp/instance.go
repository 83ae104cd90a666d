package gcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/compute/apiv1/computepb"
	"google.golang.org/protobuf/proto"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// defaultImage is the Ubuntu 22.04 LTS image family. The family link
// always resolves to the latest image, matching the behavior of an
// image data source lookup.
const defaultImage = "projects/ubuntu-os-cloud/global/images/family/ubuntu-2204-lts"

const defaultDiskSizeGB = 20

// EnsureKeyPair is a no-op on Google Cloud. There is no standalone key
// pair resource; the public key is pushed through instance metadata at
// creation, so only the nominal key name is returned.
func (c *Client) EnsureKeyPair(_ context.Context, _ string) (string, error) {
	return c.names.KeyPair(), nil
}

// DeleteKeyPair is a no-op on Google Cloud, matching EnsureKeyPair.
func (c *Client) DeleteKeyPair(_ context.Context) error {
	return nil
}

// CreateInstance gets or creates the deployment VM. The SSH public key
// is injected via the ssh-keys metadata entry, and the tenant firewall
// tag links the instance to its firewall rule.
func (c *Client) CreateInstance(ctx context.Context, spec cloud.InstanceSpec) (*cloud.Instance, error) {
	existing, err := c.GetInstance(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	name := c.names.Instance()
	image := c.cfg.Image
	if image == "" {
		image = defaultImage
	}
	machineType := fmt.Sprintf("zones/%s/machineTypes/%s", c.zone, c.cfg.MachineType)
	sshKeys := fmt.Sprintf("%s:%s", c.cfg.AdminUser, strings.TrimSpace(spec.PublicKey))

	log.Printf("Creating instance %s...", name)

	err = c.instances.Insert(ctx, &computepb.InsertInstanceRequest{
		Project: c.project,
		Zone:    c.zone,
		InstanceResource: &computepb.Instance{
			Name:        proto.String(name),
			MachineType: proto.String(machineType),
			Labels:      c.labels(),
			Tags: &computepb.Tags{
				Items: []string{name, c.names.SecurityGroup()},
			},
			Disks: []*computepb.AttachedDisk{{
				Boot:       proto.Bool(true),
				AutoDelete: proto.Bool(true),
				InitializeParams: &computepb.AttachedDiskInitializeParams{
					SourceImage: proto.String(image),
					DiskSizeGb:  proto.Int64(defaultDiskSizeGB),
				},
			}},
			NetworkInterfaces: []*computepb.NetworkInterface{{
				Subnetwork: proto.String(spec.Network.SubnetID),
				AccessConfigs: []*computepb.AccessConfig{{
					Name: proto.String("External NAT"),
					Type: proto.String("ONE_TO_ONE_NAT"),
				}},
			}},
			Metadata: &computepb.Metadata{
				Items: []*computepb.Items{{
					Key:   proto.String("ssh-keys"),
					Value: proto.String(sshKeys),
				}},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	return c.GetInstance(ctx)
}

// GetInstance returns the deployment VM, or nil when it does not
// exist.
func (c *Client) GetInstance(ctx context.Context) (*cloud.Instance, error) {
	inst, err := c.instances.Get(ctx, &computepb.GetInstanceRequest{
		Project:  c.project,
		Zone:     c.zone,
		Instance: c.names.Instance(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	return toInstance(inst), nil
}

// DeleteInstance removes the deployment VM. Absence is success.
func (c *Client) DeleteInstance(ctx context.Context) error {
	err := c.instances.Delete(ctx, &computepb.DeleteInstanceRequest{
		Project:  c.project,
		Zone:     c.zone,
		Instance: c.names.Instance(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete instance: %w", err)
	}
	log.Printf("Deleted instance %s", c.names.Instance())
	return nil
}

func toInstance(inst *computepb.Instance) *cloud.Instance {
	out := &cloud.Instance{
		ID:    fmt.Sprintf("%d", inst.GetId()),
		Name:  inst.GetName(),
		State: strings.ToLower(inst.GetStatus()),
	}
	for _, ni := range inst.GetNetworkInterfaces() {
		if out.PrivateIP == "" {
			out.PrivateIP = ni.GetNetworkIP()
		}
		for _, ac := range ni.GetAccessConfigs() {
			if ac.GetNatIP() != "" {
				out.PublicIP = ac.GetNatIP()
				break
			}
		}
	}
	return out
}
