package hcloud

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/skybox-cli/skybox/internal/cloud"
)

const defaultImage = "ubuntu-22.04"

// CreateInstance gets or creates the deployment server, attached to the
// tenant network and firewall.
func (c *Client) CreateInstance(ctx context.Context, spec cloud.InstanceSpec) (*cloud.Instance, error) {
	existing, err := c.GetInstance(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	name := c.names.Instance()

	serverType, err := c.api.GetServerType(ctx, c.cfg.MachineType)
	if err != nil {
		return nil, fmt.Errorf("failed to get server type: %w", err)
	}
	if serverType == nil {
		return nil, fmt.Errorf("server type not found: %s", c.cfg.MachineType)
	}

	imageName := c.cfg.Image
	if imageName == "" {
		imageName = defaultImage
	}
	image, err := c.api.GetImageForArchitecture(ctx, imageName, serverType.Architecture)
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	if image == nil {
		return nil, fmt.Errorf("image not found: %s", imageName)
	}

	location, err := c.api.GetLocation(ctx, c.cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	sshKey, err := c.api.GetSSHKey(ctx, spec.KeyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get ssh key: %w", err)
	}
	if sshKey == nil {
		return nil, fmt.Errorf("ssh key not found: %s", spec.KeyName)
	}

	networkID, err := strconv.ParseInt(spec.Network.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid network ID %q: %w", spec.Network.ID, err)
	}
	firewallID, err := strconv.ParseInt(spec.SecurityGroup.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid firewall ID %q: %w", spec.SecurityGroup.ID, err)
	}

	log.Printf("Creating server %s...", name)

	err = c.api.CreateServer(ctx, hcloud.ServerCreateOpts{
		Name:       name,
		ServerType: serverType,
		Image:      image,
		Location:   location,
		SSHKeys:    []*hcloud.SSHKey{sshKey},
		Networks:   []*hcloud.Network{{ID: networkID}},
		Firewalls: []*hcloud.ServerCreateFirewall{{
			Firewall: hcloud.Firewall{ID: firewallID},
		}},
		Labels: c.labels(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return c.GetInstance(ctx)
}

// GetInstance returns the deployment server, or nil when it does not
// exist.
func (c *Client) GetInstance(ctx context.Context) (*cloud.Instance, error) {
	server, err := c.api.GetServer(ctx, c.names.Instance())
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	if server == nil {
		return nil, nil
	}
	return toInstance(server), nil
}

// DeleteInstance removes the deployment server. Absence is success.
func (c *Client) DeleteInstance(ctx context.Context) error {
	server, err := c.api.GetServer(ctx, c.names.Instance())
	if err != nil {
		return fmt.Errorf("failed to get server: %w", err)
	}
	if server == nil {
		return nil
	}

	if err := c.api.DeleteServer(ctx, server); err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	log.Printf("Deleted server %s", c.names.Instance())
	return nil
}

func toInstance(server *hcloud.Server) *cloud.Instance {
	out := &cloud.Instance{
		ID:    strconv.FormatInt(server.ID, 10),
		Name:  server.Name,
		State: string(server.Status),
	}
	if server.PublicNet.IPv4.IP != nil {
		out.PublicIP = server.PublicNet.IPv4.IP.String()
	}
	for _, private := range server.PrivateNet {
		if private.IP != nil {
			out.PrivateIP = private.IP.String()
			break
		}
	}
	return out
}
