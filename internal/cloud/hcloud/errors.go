package hcloud

import "strings"

// isResourceLocked reports whether the error means the resource is
// still locked by another operation, which is retryable.
func isResourceLocked(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "locked") ||
		strings.Contains(msg, "conflict") ||
		strings.Contains(msg, "is busy")
}
