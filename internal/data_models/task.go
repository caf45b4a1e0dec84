package dto

import "time"

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	AssigneeEmail  string     `json:"assignee_email,omitempty"`
	TagIDs         []uint     `json:"tag_ids,omitempty"`
}

type UpdateTaskRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	TagIDs         []uint     `json:"tag_ids,omitempty"`
}

// AssignTaskRequest with an empty email unassigns the task.
type AssignTaskRequest struct {
	AssigneeEmail string `json:"assignee_email"`
}

type AcceptRejectRequest struct {
	Accept          bool    `json:"accept"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type CompleteTaskRequest struct {
	ActualStart *time.Time `json:"actual_start"`
	ActualEnd   *time.Time `json:"actual_end"`
}

type ApproveRejectRequest struct {
	Approve         bool    `json:"approve"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
