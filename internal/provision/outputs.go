package provision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Outputs describes a provisioned deployment: instance identity,
// addresses, and the pieces needed to SSH in.
type Outputs struct {
	Tenant   string `yaml:"tenant"`
	Provider string `yaml:"provider"`
	Region   string `yaml:"region"`

	InstanceID string `yaml:"instance_id"`
	Instance   string `yaml:"instance_name"`
	PublicIP   string `yaml:"public_ip,omitempty"`
	PrivateIP  string `yaml:"private_ip,omitempty"`
	State      string `yaml:"state,omitempty"`

	NetworkID       string `yaml:"network_id,omitempty"`
	SubnetID        string `yaml:"subnet_id,omitempty"`
	SecurityGroupID string `yaml:"security_group_id,omitempty"`

	KeyName    string `yaml:"key_name"`
	KeyFile    string `yaml:"key_file"`
	AdminUser  string `yaml:"admin_user"`
	SSHCommand string `yaml:"ssh_command,omitempty"`
}

// Write persists the outputs as YAML. The file is 0600 because the
// SSH command references the private key path.
func (o *Outputs) Write(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal outputs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write outputs file: %w", err)
	}
	return nil
}

// ReadOutputs loads a previously written outputs file.
func ReadOutputs(path string) (*Outputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs file: %w", err)
	}
	var out Outputs
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse outputs file: %w", err)
	}
	return &out, nil
}

// RemoveOutputs deletes the outputs file if present.
func RemoveOutputs(path string) {
	_ = os.Remove(path)
}
