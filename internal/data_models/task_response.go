package dto

import (
	"time"

	"time-management.com/time-management/internal/constants"
)

// TaskResponse is the denormalized projection handed back by every
// task operation: identities resolved to emails, tags inlined.
type TaskResponse struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     *string              `json:"description,omitempty"`
	ScheduledStart  *time.Time           `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time           `json:"scheduled_end,omitempty"`
	Status          constants.TaskStatus `json:"status"`
	CreatedBy       string               `json:"created_by"`
	CreatorEmail    string               `json:"creator_email"`
	AssignedTo      *string              `json:"assigned_to,omitempty"`
	AssigneeEmail   *string              `json:"assignee_email,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       *time.Time           `json:"updated_at,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
	ActualStart     *time.Time           `json:"actual_start,omitempty"`
	ActualEnd       *time.Time           `json:"actual_end,omitempty"`
	Tags            []TagResponse        `json:"tags"`
}

type TaskHistoryResponse struct {
	ID               uint                  `json:"id"`
	TaskID           uint                  `json:"task_id"`
	Action           string                `json:"action"`
	PerformedBy      string                `json:"performed_by"`
	PerformedByEmail string                `json:"performed_by_email"`
	Details          *string               `json:"details,omitempty"`
	OldStatus        *constants.TaskStatus `json:"old_status,omitempty"`
	NewStatus        *constants.TaskStatus `json:"new_status,omitempty"`
	PerformedAt      time.Time             `json:"performed_at"`
}
