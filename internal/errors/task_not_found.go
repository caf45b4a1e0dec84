package errors

import "net/http"

// ErrTaskNotFound covers both a missing task and a task the caller may
// not see. The two cases are deliberately indistinguishable.
var ErrTaskNotFound = &Exception{
	Message:    "task not found or you don't have access to it",
	StatusCode: http.StatusNotFound,
}
