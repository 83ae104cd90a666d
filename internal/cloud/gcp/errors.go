package gcp

import (
	"errors"
	"net/http"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
)

// isNotFound reports whether a Compute Engine API error is a 404. The
// REST clients wrap googleapi errors in apierror.APIError, so both
// layers are checked.
func isNotFound(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound
	}
	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		return aerr.HTTPCode() == http.StatusNotFound
	}
	return false
}
