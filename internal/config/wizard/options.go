package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/skybox-cli/skybox/internal/config"
	"github.com/skybox-cli/skybox/internal/keygen"
)

// RegionOption describes a selectable region or zone.
type RegionOption struct {
	Value       string
	Description string
}

// ProviderOptions lists the supported deployment targets.
var ProviderOptions = []huh.Option[string]{
	huh.NewOption("Amazon Web Services", config.ProviderAWS),
	huh.NewOption("Microsoft Azure", config.ProviderAzure),
	huh.NewOption("Google Cloud", config.ProviderGCP),
	huh.NewOption("Hetzner Cloud", config.ProviderHCloud),
}

// Regions contains common regions per provider. The input still
// accepts free-form values for regions not listed here.
var Regions = map[string][]RegionOption{
	config.ProviderAWS: {
		{Value: "us-east-1", Description: "N. Virginia, USA"},
		{Value: "us-west-2", Description: "Oregon, USA"},
		{Value: "eu-west-1", Description: "Ireland"},
		{Value: "eu-central-1", Description: "Frankfurt, Germany"},
		{Value: "ap-southeast-1", Description: "Singapore"},
	},
	config.ProviderAzure: {
		{Value: "eastus", Description: "Virginia, USA"},
		{Value: "westus2", Description: "Washington, USA"},
		{Value: "westeurope", Description: "Netherlands"},
		{Value: "northeurope", Description: "Ireland"},
		{Value: "southeastasia", Description: "Singapore"},
	},
	config.ProviderGCP: {
		{Value: "us-central1-a", Description: "Iowa, USA"},
		{Value: "us-east1-b", Description: "South Carolina, USA"},
		{Value: "europe-west1-b", Description: "Belgium"},
		{Value: "europe-west4-a", Description: "Netherlands"},
		{Value: "asia-southeast1-a", Description: "Singapore"},
	},
	config.ProviderHCloud: {
		{Value: "fsn1", Description: "Falkenstein, Germany"},
		{Value: "nbg1", Description: "Nuremberg, Germany"},
		{Value: "hel1", Description: "Helsinki, Finland"},
		{Value: "ash", Description: "Ashburn, USA"},
		{Value: "sin", Description: "Singapore"},
	},
}

// KeyTypeOptions lists the supported SSH key algorithms.
var KeyTypeOptions = []huh.Option[string]{
	huh.NewOption("RSA 4096 (widest compatibility)", keygen.TypeRSA),
	huh.NewOption("Ed25519 (modern, small keys)", keygen.TypeEd25519),
}

// RegionsToOptions converts the region list of a provider into select
// options.
func RegionsToOptions(provider string) []huh.Option[string] {
	regions := Regions[provider]
	opts := make([]huh.Option[string], 0, len(regions))
	for _, r := range regions {
		opts = append(opts, huh.NewOption(r.Value+" - "+r.Description, r.Value))
	}
	return opts
}
