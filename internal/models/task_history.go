package model

import (
	"time"

	"time-management.com/time-management/internal/constants"
)

// TaskHistory rows are append-only. Nothing in the codebase updates
// them; they are removed only when the owning task is deleted.
type TaskHistory struct {
	ID          uint                  `gorm:"primaryKey" json:"id"`
	TaskID      uint                  `gorm:"not null;index" json:"task_id"`
	Action      string                `gorm:"size:50;not null" json:"action"`
	PerformedBy string                `gorm:"size:36;not null" json:"performed_by"`
	Details     *string               `gorm:"size:1000" json:"details,omitempty"`
	OldStatus   *constants.TaskStatus `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus   *constants.TaskStatus `gorm:"type:varchar(20)" json:"new_status,omitempty"`
	PerformedAt time.Time             `gorm:"not null" json:"performed_at"`
}
