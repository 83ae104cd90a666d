package azure

import (
	"context"
	"fmt"
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
)

// EnsureKeyPair registers the local public key as an Azure SSH public
// key resource under the tenant key name. The key is also injected
// directly into the VM's OS profile; the resource exists so the key is
// visible and auditable in the portal.
func (c *Client) EnsureKeyPair(ctx context.Context, publicKey string) (string, error) {
	rg := c.resourceGroup()
	name := c.names.KeyPair()

	_, err := c.sshKeys.Get(ctx, rg, name)
	if err == nil {
		return name, nil
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to get SSH key: %w", err)
	}

	err = c.sshKeys.Create(ctx, rg, name, armcompute.SSHPublicKeyResource{
		Location: to.Ptr(c.cfg.Region),
		Tags:     c.tags(),
		Properties: &armcompute.SSHPublicKeyResourceProperties{
			PublicKey: to.Ptr(publicKey),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create SSH key: %w", err)
	}

	log.Printf("Registered SSH key %s", name)
	return name, nil
}

// DeleteKeyPair removes the tenant SSH key resource. Absence is
// success.
func (c *Client) DeleteKeyPair(ctx context.Context) error {
	err := c.sshKeys.Delete(ctx, c.resourceGroup(), c.names.KeyPair())
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete SSH key: %w", err)
	}
	return nil
}
