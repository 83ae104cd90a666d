package aws

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/skybox-cli/skybox/internal/cloud"
	"github.com/skybox-cli/skybox/internal/retry"
)

// Canonical publishes the official Ubuntu AMIs under this owner ID.
const ubuntuOwnerID = "099720109477"

const ubuntuJammyPattern = "ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-*"

const instanceWaitTimeout = 5 * time.Minute

// CreateInstance gets or creates the deployment VM and waits until it
// is running. An existing instance (in any non-terminated state) is
// returned as-is.
func (c *Client) CreateInstance(ctx context.Context, spec cloud.InstanceSpec) (*cloud.Instance, error) {
	existing, err := c.GetInstance(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	imageID, err := c.resolveImage(ctx)
	if err != nil {
		return nil, err
	}

	profileName, err := c.EnsureInstanceProfile(ctx)
	if err != nil {
		return nil, err
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(imageID),
		InstanceType: types.InstanceType(c.cfg.MachineType),
		KeyName:      aws.String(spec.KeyName),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
		NetworkInterfaces: []types.InstanceNetworkInterfaceSpecification{{
			DeviceIndex:              aws.Int32(0),
			SubnetId:                 aws.String(spec.Network.SubnetID),
			Groups:                   []string{spec.SecurityGroup.ID},
			AssociatePublicIpAddress: aws.Bool(true),
		}},
		TagSpecifications: tagSpec(types.ResourceTypeInstance, c.names.Instance(), c.tags()),
	}
	if profileName != "" {
		input.IamInstanceProfile = &types.IamInstanceProfileSpecification{
			Name: aws.String(profileName),
		}
	}

	// Launch requests are the call most likely to hit API rate limits.
	var out *ec2.RunInstancesOutput
	err = retry.WithExponentialBackoff(ctx, func() error {
		var runErr error
		out, runErr = c.ec2.RunInstances(ctx, input)
		if runErr != nil && !isThrottled(runErr) {
			return retry.Fatal(runErr)
		}
		return runErr
	}, retry.WithMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to run instance: %w", err)
	}
	instanceID := aws.ToString(out.Instances[0].InstanceId)
	log.Printf("Launched instance %s (%s), waiting for it to run...", c.names.Instance(), instanceID)

	waiter := ec2.NewInstanceRunningWaiter(c.ec2)
	err = waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, instanceWaitTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for instance to run: %w", err)
	}

	// Re-describe to pick up the assigned addresses.
	return c.GetInstance(ctx)
}

// GetInstance returns the deployment VM, or nil if no non-terminated
// instance carries the tenant's Name tag.
func (c *Client) GetInstance(ctx context.Context) (*cloud.Instance, error) {
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			nameFilter(c.names.Instance()),
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"pending", "running", "stopping", "stopped"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}

	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			return toInstance(&inst), nil
		}
	}
	return nil, nil
}

// DeleteInstance terminates the deployment VM and waits for
// termination. Absence is success.
func (c *Client) DeleteInstance(ctx context.Context) error {
	inst, err := c.GetInstance(ctx)
	if err != nil {
		return err
	}
	if inst == nil {
		return nil
	}

	_, err = c.ec2.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{inst.ID},
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to terminate instance: %w", err)
	}

	waiter := ec2.NewInstanceTerminatedWaiter(c.ec2)
	err = waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{inst.ID},
	}, instanceWaitTimeout)
	if err != nil {
		return fmt.Errorf("failed waiting for instance termination: %w", err)
	}

	log.Printf("Terminated instance %s", c.names.Instance())
	return nil
}

// resolveImage returns the configured AMI ID, or the most recent
// Ubuntu 22.04 LTS AMI when no image is configured. This replaces the
// aws_ami data source lookup of the original template.
func (c *Client) resolveImage(ctx context.Context) (string, error) {
	if c.cfg.Image != "" {
		return c.cfg.Image, nil
	}

	out, err := c.ec2.DescribeImages(ctx, &ec2.DescribeImagesInput{
		Owners: []string{ubuntuOwnerID},
		Filters: []types.Filter{
			{Name: aws.String("name"), Values: []string{ubuntuJammyPattern}},
			{Name: aws.String("state"), Values: []string{"available"}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe images: %w", err)
	}
	if len(out.Images) == 0 {
		return "", fmt.Errorf("no Ubuntu 22.04 AMI found in region %s", c.cfg.Region)
	}

	images := out.Images
	// CreationDate is RFC 3339, so the lexical order is chronological.
	sort.Slice(images, func(i, j int) bool {
		return aws.ToString(images[i].CreationDate) > aws.ToString(images[j].CreationDate)
	})
	return aws.ToString(images[0].ImageId), nil
}

func toInstance(inst *types.Instance) *cloud.Instance {
	out := &cloud.Instance{
		ID:        aws.ToString(inst.InstanceId),
		PublicIP:  aws.ToString(inst.PublicIpAddress),
		PrivateIP: aws.ToString(inst.PrivateIpAddress),
		State:     string(inst.State.Name),
	}
	for _, tag := range inst.Tags {
		if aws.ToString(tag.Key) == "Name" {
			out.Name = aws.ToString(tag.Value)
		}
	}
	return out
}
