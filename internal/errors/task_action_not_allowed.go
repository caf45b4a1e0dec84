package errors

import "net/http"

// ErrTaskActionNotAllowed is the single answer for every failed
// transition guard: wrong caller, wrong status, missing schedule,
// unresolvable assignee. Which guard tripped is never revealed.
var ErrTaskActionNotAllowed = &Exception{
	Message:    "task not found, operation not permitted, or task is in the wrong state",
	StatusCode: http.StatusBadRequest,
}
