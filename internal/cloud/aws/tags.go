package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/config"
)

func baseTags(cfg *config.Config) map[string]string {
	return cloud.BaseTags(cfg.Tenant, cfg.Tags)
}

// tagSpec builds the TagSpecifications for a create call, adding the
// Name tag the lookups key on.
func tagSpec(resourceType types.ResourceType, name string, tags map[string]string) []types.TagSpecification {
	ec2Tags := make([]types.Tag, 0, len(tags)+1)
	ec2Tags = append(ec2Tags, types.Tag{Key: aws.String("Name"), Value: aws.String(name)})
	for k, v := range tags {
		ec2Tags = append(ec2Tags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	return []types.TagSpecification{{
		ResourceType: resourceType,
		Tags:         ec2Tags,
	}}
}

// nameFilter matches resources by their Name tag.
func nameFilter(name string) types.Filter {
	return types.Filter{
		Name:   aws.String("tag:Name"),
		Values: []string{name},
	}
}
