package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// isNotFound reports whether an ARM API error is a 404, which the
// get-or-create flow treats as "create it".
func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
