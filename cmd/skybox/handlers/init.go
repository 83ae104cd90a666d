package handlers

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := wizard.BuildConfig(result)

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// InitDefaults writes a configuration with defaults for the given
// tenant and provider, skipping the wizard entirely.
func InitDefaults(outputPath, tenant, provider string) error {
	if tenant == "" {
		return fmt.Errorf("--tenant is required with --defaults")
	}
	if !slices.Contains(config.Providers, provider) {
		return fmt.Errorf("unknown provider %q (valid: %v)", provider, config.Providers)
	}

	cfg := config.DefaultConfig(tenant, provider)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("skybox - single-VM cloud deployments")
	fmt.Println("====================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println("Answer a few questions and you are ready to deploy.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Tenant:       %s\n", cfg.Tenant)
	fmt.Printf("  Provider:     %s\n", cfg.Provider)
	fmt.Printf("  Region:       %s\n", cfg.Region)
	fmt.Printf("  Machine Type: %s\n", cfg.MachineType)
	fmt.Printf("  Admin User:   %s\n", cfg.AdminUser)
	fmt.Printf("  Key:          %s", cfg.Key.Type)
	if cfg.Key.Type == "rsa" {
		fmt.Printf(" (%d bits)", cfg.Key.Bits)
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review the configuration: cat %s\n", outputPath)
	fmt.Println("  2. Export your cloud credentials (see README)")
	fmt.Printf("  3. Deploy: skybox deploy -c %s\n", outputPath)
	fmt.Println()
}
