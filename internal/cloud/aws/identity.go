package aws

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// ec2AssumeRolePolicy lets EC2 instances assume the deployment role.
const ec2AssumeRolePolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"Service": "ec2.amazonaws.com"},
      "Action": "sts:AssumeRole"
    }
  ]
}`

// EnsureInstanceProfile gets or creates the IAM instance profile named
// in the configuration, together with its backing role. Returns the
// profile name, or "" when no profile is configured.
func (c *Client) EnsureInstanceProfile(ctx context.Context) (string, error) {
	name := c.cfg.InstanceProfile
	if name == "" {
		return "", nil
	}

	_, err := c.iam.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	if err == nil {
		return name, nil
	}
	if !isNotFound(err) {
		return "", fmt.Errorf("failed to get instance profile: %w", err)
	}

	_, err = c.iam.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(name),
		AssumeRolePolicyDocument: aws.String(ec2AssumeRolePolicy),
		Description:              aws.String(fmt.Sprintf("Deployment role for tenant %s", c.cfg.Tenant)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create role: %w", err)
	}

	_, err = c.iam.CreateInstanceProfile(ctx, &iam.CreateInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create instance profile: %w", err)
	}

	_, err = c.iam.AddRoleToInstanceProfile(ctx, &iam.AddRoleToInstanceProfileInput{
		InstanceProfileName: aws.String(name),
		RoleName:            aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to add role to instance profile: %w", err)
	}

	log.Printf("Created instance profile %s", name)
	return name, nil
}
