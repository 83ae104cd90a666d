// Package main is the entry point for the skybox CLI.
//
// skybox deploys single-VM environments on AWS, Azure, Google Cloud, or
// Hetzner Cloud from one small YAML file. Provisioning is stateless and
// idempotent: resources are addressed by tenant-derived names, so
// re-running a deployment converges on the existing infrastructure.
//
// Commands: init, deploy, outputs, destroy.
//
// For detailed usage information, run:
//
//	skybox --help
package main

import (
	"fmt"
	"os"

	"github.com/skybox-cli/skybox/cmd/skybox/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
