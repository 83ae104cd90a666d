package aws

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/skybox-cli/skybox/internal/cloud"
)

// EnsureSecurityGroup gets or creates the tenant security group with an
// SSH ingress rule for the configured source ranges.
func (c *Client) EnsureSecurityGroup(ctx context.Context, network *cloud.Network) (*cloud.SecurityGroup, error) {
	name := c.names.SecurityGroup()

	existing, err := c.findSecurityGroup(ctx, network.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &cloud.SecurityGroup{ID: aws.ToString(existing.GroupId), Name: name}, nil
	}

	created, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:         aws.String(name),
		Description:       aws.String(fmt.Sprintf("SSH access for tenant %s", c.cfg.Tenant)),
		VpcId:             aws.String(network.ID),
		TagSpecifications: tagSpec(types.ResourceTypeSecurityGroup, name, c.tags()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create security group: %w", err)
	}

	ranges := make([]types.IpRange, 0, len(c.cfg.SSHAllowedCIDRs))
	for _, cidr := range c.cfg.SSHAllowedCIDRs {
		ranges = append(ranges, types.IpRange{
			CidrIp:      aws.String(cidr),
			Description: aws.String("SSH"),
		})
	}

	_, err = c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId: created.GroupId,
		IpPermissions: []types.IpPermission{{
			IpProtocol: aws.String("tcp"),
			FromPort:   aws.Int32(22),
			ToPort:     aws.Int32(22),
			IpRanges:   ranges,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to authorize SSH ingress: %w", err)
	}

	log.Printf("Created security group %s (%s)", name, aws.ToString(created.GroupId))
	return &cloud.SecurityGroup{ID: aws.ToString(created.GroupId), Name: name}, nil
}

func (c *Client) findSecurityGroup(ctx context.Context, vpcID string) (*types.SecurityGroup, error) {
	filters := []types.Filter{
		{Name: aws.String("group-name"), Values: []string{c.names.SecurityGroup()}},
	}
	if vpcID != "" {
		filters = append(filters, types.Filter{
			Name:   aws.String("vpc-id"),
			Values: []string{vpcID},
		})
	}

	out, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("failed to describe security groups: %w", err)
	}
	if len(out.SecurityGroups) == 0 {
		return nil, nil
	}
	return &out.SecurityGroups[0], nil
}

// DeleteSecurityGroup removes the tenant security group. Absence is
// success.
func (c *Client) DeleteSecurityGroup(ctx context.Context) error {
	sg, err := c.findSecurityGroup(ctx, "")
	if err != nil {
		return err
	}
	if sg == nil {
		return nil
	}

	_, err = c.ec2.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{GroupId: sg.GroupId})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete security group: %w", err)
	}
	return nil
}
