package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "a user with this email already exists",
	StatusCode: http.StatusConflict,
}
