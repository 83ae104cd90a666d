// Package keygen generates SSH key pairs for deployment access.
//
// Keys are produced in PEM format (private) and OpenSSH authorized_keys
// format (public), suitable for registering with the cloud provider or
// injecting into instance metadata.
package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// Key type identifiers accepted in deployment configuration.
const (
	TypeRSA     = "rsa"
	TypeEd25519 = "ed25519"
)

// KeyPair holds an SSH key pair in ready-to-use formats.
type KeyPair struct {
	// PrivateKey is the PEM-encoded private key.
	PrivateKey []byte
	// PublicKey is the public key in OpenSSH authorized_keys format.
	PublicKey []byte
}

// GenerateRSAKeyPair generates a new RSA key pair with the specified bit size.
// Common bit sizes are 2048 (minimum recommended) and 4096 (high security).
func GenerateRSAKeyPair(bits int) (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}

	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	privDER := x509.MarshalPKCS1PrivateKey(privateKey)
	privBlock := pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: privDER,
	}
	privateKeyPEM := pem.EncodeToMemory(&privBlock)

	publicKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: privateKeyPEM,
		PublicKey:  ssh.MarshalAuthorizedKey(publicKey),
	}, nil
}

// GenerateEd25519KeyPair generates a new ed25519 key pair. The private key
// is serialized in the OpenSSH PEM format.
func GenerateEd25519KeyPair(comment string) (*KeyPair, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}

	pemBlock, err := ssh.MarshalPrivateKey(privKey, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ed25519 private key: %w", err)
	}

	publicKey, err := ssh.NewPublicKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: pem.EncodeToMemory(pemBlock),
		PublicKey:  ssh.MarshalAuthorizedKey(publicKey),
	}, nil
}

// Generate produces a key pair of the given type. bits applies to RSA
// keys only; the comment is embedded in ed25519 private keys.
func Generate(keyType string, bits int, comment string) (*KeyPair, error) {
	switch keyType {
	case TypeEd25519:
		return GenerateEd25519KeyPair(comment)
	case TypeRSA, "":
		return GenerateRSAKeyPair(bits)
	default:
		return nil, fmt.Errorf("unsupported key type: %s", keyType)
	}
}

// LoadKeyPair reads a PEM private key from disk and re-derives the
// public key. Existing key files are never regenerated, so a deployment
// keeps its key material across repeated runs.
func LoadKeyPair(path string) (*KeyPair, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	raw, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", path, err)
	}

	signer, err := ssh.NewSignerFromKey(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key from %s: %w", path, err)
	}

	return &KeyPair{
		PrivateKey: data,
		PublicKey:  ssh.MarshalAuthorizedKey(signer.PublicKey()),
	}, nil
}

// LoadOrGenerate returns the key pair stored at path, generating and
// writing a new one (mode 0600) when the file does not exist.
func LoadOrGenerate(path, keyType string, bits int, comment string) (*KeyPair, error) {
	if _, err := os.Stat(path); err == nil {
		return LoadKeyPair(path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat key file: %w", err)
	}

	kp, err := Generate(keyType, bits, comment)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, kp.PrivateKey, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}

	return kp, nil
}
