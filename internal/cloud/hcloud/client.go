// Package hcloud implements the deployment provisioner against the
// Hetzner Cloud API using hcloud-go.
package hcloud

import (
	"context"
	"fmt"
	"os"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/naming"
)

var _ cloud.Provisioner = (*Client)(nil)

// Client provisions tenant deployments on Hetzner Cloud.
type Client struct {
	api   api
	cfg   *config.Config
	names *naming.Names
}

// New creates a Client authenticated with the HCLOUD_TOKEN environment
// variable.
func New(_ context.Context, cfg *config.Config) (*Client, error) {
	token := os.Getenv("HCLOUD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("HCLOUD_TOKEN is not set")
	}
	return &Client{
		api:   newRealClient(token),
		cfg:   cfg,
		names: naming.NewNames(cfg.Tenant),
	}, nil
}

func (c *Client) labels() map[string]string {
	return cloud.BaseTags(c.cfg.Tenant, c.cfg.Tags)
}

// networkZone maps the configured location to its network zone, which
// subnets are scoped to.
func (c *Client) networkZone() hcloud.NetworkZone {
	switch c.cfg.Region {
	case "ash":
		return hcloud.NetworkZoneUSEast
	case "hil":
		return hcloud.NetworkZoneUSWest
	case "sin":
		return hcloud.NetworkZoneAPSouthEast
	default:
		return hcloud.NetworkZoneEUCentral
	}
}
