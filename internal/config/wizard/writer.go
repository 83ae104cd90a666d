package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/skybox-cli/skybox/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteConfig writes the configuration to a YAML file with a
// descriptive header. An existing file requires confirmation before it
// is overwritten.
func WriteConfig(cfg *config.Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		ok, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted, %s left untouched", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader())
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func generateHeader() string {
	return fmt.Sprintf(`# skybox deployment configuration
# Generated by skybox init on %s
#
# Run "skybox deploy" to provision the deployment.
`, time.Now().Format("2006-01-02"))
}

func defaultConfirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}
