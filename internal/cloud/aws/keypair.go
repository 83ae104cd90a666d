package aws

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EnsureKeyPair imports the local public key under the tenant key name
// unless a key pair with that name already exists.
func (c *Client) EnsureKeyPair(ctx context.Context, publicKey string) (string, error) {
	name := c.names.KeyPair()

	_, err := c.ec2.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	})
	if err == nil {
		return name, nil
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to describe key pairs: %w", err)
	}

	_, err = c.ec2.ImportKeyPair(ctx, &ec2.ImportKeyPairInput{
		KeyName:           aws.String(name),
		PublicKeyMaterial: []byte(publicKey),
	})
	if err != nil {
		return "", fmt.Errorf("failed to import key pair: %w", err)
	}

	log.Printf("Imported key pair %s", name)
	return name, nil
}

// DeleteKeyPair removes the tenant key pair. Absence is success.
func (c *Client) DeleteKeyPair(ctx context.Context) error {
	_, err := c.ec2.DeleteKeyPair(ctx, &ec2.DeleteKeyPairInput{
		KeyName: aws.String(c.names.KeyPair()),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	return nil
}
