package errors

import (
	"errors"
	"net/http"
)

// Exception carries the HTTP status a service-level failure maps to.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode unwraps the status of any Exception in the chain;
// anything else is a 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
