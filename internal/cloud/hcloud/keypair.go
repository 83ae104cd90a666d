package hcloud

import (
	"context"
	"fmt"
	"log"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/skybox-cli/skybox/internal/retry"
)

// EnsureKeyPair uploads the local public key under the tenant key name
// unless a key with that name already exists.
func (c *Client) EnsureKeyPair(ctx context.Context, publicKey string) (string, error) {
	name := c.names.KeyPair()

	key, err := c.api.GetSSHKey(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to get ssh key: %w", err)
	}
	if key != nil {
		return name, nil
	}

	key, err = c.api.CreateSSHKey(ctx, hcloud.SSHKeyCreateOpts{
		Name:      name,
		PublicKey: publicKey,
		Labels:    c.labels(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create ssh key: %w", err)
	}

	log.Printf("Uploaded ssh key %s (%d)", name, key.ID)
	return name, nil
}

// DeleteKeyPair removes the tenant SSH key. Absence is success.
func (c *Client) DeleteKeyPair(ctx context.Context) error {
	return retry.WithExponentialBackoff(ctx, func() error {
		key, err := c.api.GetSSHKey(ctx, c.names.KeyPair())
		if err != nil {
			return retry.Fatal(fmt.Errorf("failed to get ssh key: %w", err))
		}
		if key == nil {
			return nil
		}
		if err := c.api.DeleteSSHKey(ctx, key); err != nil {
			if isResourceLocked(err) {
				return err
			}
			return retry.Fatal(err)
		}
		return nil
	})
}
