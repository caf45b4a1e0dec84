package errors

import "net/http"

// NewValidation wraps a field-level validation message. Unlike the
// transition guards, validation messages are specific on purpose.
func NewValidation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
