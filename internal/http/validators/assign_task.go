package validators

import (
	dto "time-management.com/time-management/internal/data_models"
)

// An empty assignee email is valid: it unassigns the task.
func ValidateAssignTaskRequest(r *dto.AssignTaskRequest) error {
	if r.AssigneeEmail == "" {
		return nil
	}
	return validateEmail(r.AssigneeEmail)
}
