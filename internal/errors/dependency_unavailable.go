package errors

import "net/http"

// ErrDependencyUnavailable surfaces storage or identity backend
// failures as a retryable condition.
var ErrDependencyUnavailable = &Exception{
	Message:    "a backend dependency is unavailable, please retry",
	StatusCode: http.StatusServiceUnavailable,
}
