// Package gcp implements the deployment provisioner against the Google
// Compute Engine API using the cloud.google.com/go/compute clients.
//
// Authentication uses Application Default Credentials. The configured
// region is a zone name; the enclosing region is derived from it for
// regional resources like subnetworks.
package gcp

import (
	"context"
	"fmt"
	"strings"

	compute "cloud.google.com/go/compute/apiv1"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/naming"
)

var _ cloud.Provisioner = (*Client)(nil)

// Client provisions tenant deployments on Google Cloud.
type Client struct {
	networks    networksAPI
	subnetworks subnetworksAPI
	firewalls   firewallsAPI
	instances   instancesAPI

	cfg     *config.Config
	names   *naming.Names
	project string
	zone    string
}

// New creates a Client using Application Default Credentials.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GCP.Project == "" {
		return nil, fmt.Errorf("gcp project is not set")
	}

	networks, err := compute.NewNetworksRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create networks client: %w", err)
	}
	subnetworks, err := compute.NewSubnetworksRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create subnetworks client: %w", err)
	}
	firewalls, err := compute.NewFirewallsRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firewalls client: %w", err)
	}
	instances, err := compute.NewInstancesRESTClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instances client: %w", err)
	}

	return &Client{
		networks:    networksClient{raw: networks},
		subnetworks: subnetworksClient{raw: subnetworks},
		firewalls:   firewallsClient{raw: firewalls},
		instances:   instancesClient{raw: instances},
		cfg:         cfg,
		names:       naming.NewNames(cfg.Tenant),
		project:     cfg.GCP.Project,
		zone:        cfg.Region,
	}, nil
}

// region derives the region from the configured zone, e.g.
// us-central1-a becomes us-central1.
func (c *Client) region() string {
	if i := strings.LastIndex(c.zone, "-"); i > 0 {
		return c.zone[:i]
	}
	return c.zone
}

// labels returns the tenant labels. GCP label keys and values must be
// lowercase, which the flat tag keys already satisfy.
func (c *Client) labels() map[string]string {
	return cloud.BaseTags(c.cfg.Tenant, c.cfg.Tags)
}
