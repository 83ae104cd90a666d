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

// EnsureNetwork gets or creates the tenant VPC, its public subnet, the
// internet gateway, and the default route. The VPC is located by its
// Name tag; when the lookup succeeds nothing is created.
func (c *Client) EnsureNetwork(ctx context.Context) (*cloud.Network, error) {
	vpc, err := c.findVPC(ctx)
	if err != nil {
		return nil, err
	}

	if vpc == nil {
		vpc, err = c.createVPC(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("Created VPC %s (%s)", c.names.Network(), aws.ToString(vpc.VpcId))
	}

	subnet, err := c.ensureSubnet(ctx, aws.ToString(vpc.VpcId))
	if err != nil {
		return nil, err
	}

	if err := c.ensureInternetAccess(ctx, aws.ToString(vpc.VpcId)); err != nil {
		return nil, err
	}

	return &cloud.Network{
		ID:         aws.ToString(vpc.VpcId),
		Name:       c.names.Network(),
		CIDR:       aws.ToString(vpc.CidrBlock),
		SubnetID:   aws.ToString(subnet.SubnetId),
		SubnetCIDR: aws.ToString(subnet.CidrBlock),
	}, nil
}

func (c *Client) findVPC(ctx context.Context) (*types.Vpc, error) {
	out, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []types.Filter{nameFilter(c.names.Network())},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPCs: %w", err)
	}
	if len(out.Vpcs) == 0 {
		return nil, nil
	}
	return &out.Vpcs[0], nil
}

func (c *Client) createVPC(ctx context.Context) (*types.Vpc, error) {
	out, err := c.ec2.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:         aws.String(c.cfg.NetworkCIDR),
		TagSpecifications: tagSpec(types.ResourceTypeVpc, c.names.Network(), c.tags()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create VPC: %w", err)
	}

	vpcID := out.Vpc.VpcId

	// DNS hostnames are needed to resolve the instance's public name.
	// The two attributes must be set in separate calls.
	_, err = c.ec2.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
		VpcId:            vpcID,
		EnableDnsSupport: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable VPC DNS support: %w", err)
	}
	_, err = c.ec2.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
		VpcId:              vpcID,
		EnableDnsHostnames: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable VPC DNS hostnames: %w", err)
	}

	return out.Vpc, nil
}

// ensureSubnet gets or creates the tenant subnet inside the VPC.
func (c *Client) ensureSubnet(ctx context.Context, vpcID string) (*types.Subnet, error) {
	out, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{
			nameFilter(c.names.Subnet()),
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnets: %w", err)
	}
	if len(out.Subnets) > 0 {
		return &out.Subnets[0], nil
	}

	created, err := c.ec2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
		VpcId:             aws.String(vpcID),
		CidrBlock:         aws.String(c.cfg.SubnetCIDR),
		TagSpecifications: tagSpec(types.ResourceTypeSubnet, c.names.Subnet(), c.tags()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subnet: %w", err)
	}

	_, err = c.ec2.ModifySubnetAttribute(ctx, &ec2.ModifySubnetAttributeInput{
		SubnetId:            created.Subnet.SubnetId,
		MapPublicIpOnLaunch: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable public IPs on subnet: %w", err)
	}

	log.Printf("Created subnet %s (%s)", c.names.Subnet(), aws.ToString(created.Subnet.SubnetId))
	return created.Subnet, nil
}

// ensureInternetAccess attaches an internet gateway to the VPC and
// routes 0.0.0.0/0 through it on the main route table.
func (c *Client) ensureInternetAccess(ctx context.Context, vpcID string) error {
	igwID, err := c.findInternetGateway(ctx, vpcID)
	if err != nil {
		return err
	}

	if igwID == "" {
		created, err := c.ec2.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{
			TagSpecifications: tagSpec(types.ResourceTypeInternetGateway, c.names.Network(), c.tags()),
		})
		if err != nil {
			return fmt.Errorf("failed to create internet gateway: %w", err)
		}
		igwID = aws.ToString(created.InternetGateway.InternetGatewayId)

		_, err = c.ec2.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
			VpcId:             aws.String(vpcID),
		})
		if err != nil {
			return fmt.Errorf("failed to attach internet gateway: %w", err)
		}
	}

	routeTables, err := c.ec2.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: []types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			{Name: aws.String("association.main"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to describe route tables: %w", err)
	}
	if len(routeTables.RouteTables) == 0 {
		return fmt.Errorf("no main route table found for VPC %s", vpcID)
	}
	rt := routeTables.RouteTables[0]

	for _, route := range rt.Routes {
		if aws.ToString(route.DestinationCidrBlock) == "0.0.0.0/0" {
			return nil // Default route already present.
		}
	}

	_, err = c.ec2.CreateRoute(ctx, &ec2.CreateRouteInput{
		RouteTableId:         rt.RouteTableId,
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		GatewayId:            aws.String(igwID),
	})
	if err != nil {
		return fmt.Errorf("failed to create default route: %w", err)
	}

	return nil
}

func (c *Client) findInternetGateway(ctx context.Context, vpcID string) (string, error) {
	out, err := c.ec2.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: []types.Filter{
			{Name: aws.String("attachment.vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe internet gateways: %w", err)
	}
	if len(out.InternetGateways) == 0 {
		return "", nil
	}
	return aws.ToString(out.InternetGateways[0].InternetGatewayId), nil
}

// DeleteNetwork removes the tenant subnet, internet gateway, and VPC.
// A missing VPC is treated as already deleted.
func (c *Client) DeleteNetwork(ctx context.Context) error {
	vpc, err := c.findVPC(ctx)
	if err != nil {
		return err
	}
	if vpc == nil {
		return nil
	}
	vpcID := aws.ToString(vpc.VpcId)

	subnets, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to describe subnets: %w", err)
	}
	for _, subnet := range subnets.Subnets {
		_, err := c.ec2.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{SubnetId: subnet.SubnetId})
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to delete subnet %s: %w", aws.ToString(subnet.SubnetId), err)
		}
	}

	igwID, err := c.findInternetGateway(ctx, vpcID)
	if err != nil {
		return err
	}
	if igwID != "" {
		_, err = c.ec2.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
			VpcId:             aws.String(vpcID),
		})
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to detach internet gateway: %w", err)
		}
		_, err = c.ec2.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
		})
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to delete internet gateway: %w", err)
		}
	}

	_, err = c.ec2.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: aws.String(vpcID)})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete VPC: %w", err)
	}

	log.Printf("Deleted VPC %s", c.names.Network())
	return nil
}
