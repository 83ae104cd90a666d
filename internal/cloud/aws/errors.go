package aws

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// isNotFound reports whether an EC2/IAM API error means the resource
// does not exist. EC2 uses per-resource codes like
// InvalidVpcID.NotFound and InvalidKeyPair.NotFound; IAM uses
// NoSuchEntity.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return strings.HasSuffix(code, ".NotFound") ||
		code == "NoSuchEntity" ||
		code == "InvalidGroup.NotFound"
}

// isThrottled reports whether the error is an API rate limit response,
// which the retry layer treats as transient.
func isThrottled(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return code == "RequestLimitExceeded" || code == "Throttling"
}
