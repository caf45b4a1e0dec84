package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	model "time-management.com/time-management/internal/models"
)

// Read-side of the engine: get-by-id, the three list views, and the
// audit trail. Visibility is creator-or-assignee; anything else reads
// as not found.

func (s *TaskService) GetTaskByID(ctx context.Context, callerID string, taskID uint) (*dto.TaskResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskNotFound)
	if err != nil {
		return nil, err
	}

	if !isCreatorOrAssignee(task, callerID) {
		return nil, apperrors.ErrTaskNotFound
	}

	return s.project(ctx, task)
}

func (s *TaskService) ListMine(ctx context.Context, callerID string) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	return s.projectAll(ctx, tasks)
}

func (s *TaskService) ListAssigned(ctx context.Context, callerID string) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.ListByAssignee(ctx, callerID)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	return s.projectAll(ctx, tasks)
}

func (s *TaskService) ListAll(ctx context.Context, callerID string) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.ListByCreatorOrAssignee(ctx, callerID)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	return s.projectAll(ctx, tasks)
}

func (s *TaskService) GetTaskHistory(ctx context.Context, callerID string, taskID uint) ([]dto.TaskHistoryResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskNotFound)
	if err != nil {
		return nil, err
	}

	if !isCreatorOrAssignee(task, callerID) {
		return nil, apperrors.ErrTaskNotFound
	}

	history, err := s.repo.ListHistory(ctx, taskID)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	responses := make([]dto.TaskHistoryResponse, 0, len(history))
	for _, h := range history {
		email, err := s.resolveEmail(ctx, h.PerformedBy)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.TaskHistoryResponse{
			ID:               h.ID,
			TaskID:           h.TaskID,
			Action:           h.Action,
			PerformedBy:      h.PerformedBy,
			PerformedByEmail: email,
			Details:          h.Details,
			OldStatus:        h.OldStatus,
			NewStatus:        h.NewStatus,
			PerformedAt:      h.PerformedAt,
		})
	}

	return responses, nil
}

func (s *TaskService) projectAll(ctx context.Context, tasks []model.Task) ([]dto.TaskResponse, error) {
	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp, err := s.project(ctx, &tasks[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// project builds the caller-facing view. A creator or assignee whose
// account has since been deleted shows up as an empty email rather
// than failing the whole projection.
func (s *TaskService) project(ctx context.Context, task *model.Task) (*dto.TaskResponse, error) {
	creatorEmail, err := s.resolveEmail(ctx, task.CreatedBy)
	if err != nil {
		return nil, err
	}

	var assigneeEmail *string
	if task.AssignedTo != nil {
		email, err := s.resolveEmail(ctx, *task.AssignedTo)
		if err != nil {
			return nil, err
		}
		assigneeEmail = &email
	}

	tags := make([]dto.TagResponse, 0, len(task.Tags))
	for _, t := range task.Tags {
		tags = append(tags, dto.TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}

	return &dto.TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		ScheduledStart:  task.ScheduledStart,
		ScheduledEnd:    task.ScheduledEnd,
		Status:          task.Status,
		CreatedBy:       task.CreatedBy,
		CreatorEmail:    creatorEmail,
		AssignedTo:      task.AssignedTo,
		AssigneeEmail:   assigneeEmail,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
		CompletedAt:     task.CompletedAt,
		RejectionReason: task.RejectionReason,
		ActualStart:     task.ActualStart,
		ActualEnd:       task.ActualEnd,
		Tags:            tags,
	}, nil
}

func (s *TaskService) resolveEmail(ctx context.Context, userID string) (string, error) {
	user, err := s.users.ResolveByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.ErrDependencyUnavailable
	}
	return user.Email, nil
}
