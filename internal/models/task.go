package model

import (
	"time"

	"time-management.com/time-management/internal/constants"
)

type Task struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	Title           string               `gorm:"size:200;not null" json:"title"`
	Description     *string              `gorm:"size:1000" json:"description,omitempty"`
	ScheduledStart  *time.Time           `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time           `json:"scheduled_end,omitempty"`
	Status          constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedBy       string               `gorm:"size:36;not null;index" json:"created_by"`
	AssignedTo      *string              `gorm:"size:36;index" json:"assigned_to,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       *time.Time           `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	RejectionReason *string              `gorm:"size:1000" json:"rejection_reason,omitempty"`
	ActualStart     *time.Time           `json:"actual_start,omitempty"`
	ActualEnd       *time.Time           `json:"actual_end,omitempty"`
	Tags            []Tag                `gorm:"many2many:task_tags" json:"tags"`
}
