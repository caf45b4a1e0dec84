package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"time-management.com/time-management/internal/constants"
	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	model "time-management.com/time-management/internal/models"
	repository "time-management.com/time-management/internal/repositories"
)

// UserDirectory is the identity boundary the engine consumes. A
// lookup that finds nobody returns gorm.ErrRecordNotFound.
type UserDirectory interface {
	ResolveByEmail(ctx context.Context, email string) (*model.User, error)
	ResolveByID(ctx context.Context, id string) (*model.User, error)
}

// TaskService is the task lifecycle engine. Every operation takes the
// caller's identity as an explicit argument, checks the authorization
// and state guards, mutates the task, and persists it together with
// exactly one history row. Guard failures collapse to a uniform error
// so callers cannot probe which guard tripped.
type TaskService struct {
	repo  *repository.TaskRepository
	users UserDirectory
	tags  *TagService
}

func NewTaskService(repo *repository.TaskRepository, users UserDirectory, tags *TagService) *TaskService {
	return &TaskService{repo: repo, users: users, tags: tags}
}

func (s *TaskService) CreateTask(ctx context.Context, callerID string, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	now := time.Now().UTC()

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Status:         constants.StatusPending,
		CreatedBy:      callerID,
		CreatedAt:      now,
	}

	tags, err := s.tags.ResolveMany(ctx, req.TagIDs)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	task.Tags = tags

	details := fmt.Sprintf("Task created: %s", req.Title)

	// An assignee email that resolves pre-assigns the task; one that
	// doesn't leaves it pending rather than failing the create.
	if req.AssigneeEmail != "" {
		assignee, err := s.users.ResolveByEmail(ctx, req.AssigneeEmail)
		switch {
		case err == nil:
			task.AssignedTo = &assignee.ID
			task.Status = constants.StatusAssigned
			details = fmt.Sprintf("Task created: %s, assigned to %s", req.Title, req.AssigneeEmail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// leave unassigned
		default:
			return nil, apperrors.ErrDependencyUnavailable
		}
	}

	createdStatus := task.Status
	history := s.historyEntry(task, constants.ActionCreated, callerID, details, nil, &createdStatus, now)

	if err := s.repo.Create(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

func (s *TaskService) UpdateTask(ctx context.Context, callerID string, taskID uint, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskNotFound)
	if err != nil {
		return nil, err
	}

	if !isCreatorOrAssignee(task, callerID) || constants.Terminal(task.Status) {
		return nil, apperrors.ErrTaskNotFound
	}

	tags, err := s.tags.ResolveMany(ctx, req.TagIDs)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	now := time.Now().UTC()
	task.Title = req.Title
	task.Description = req.Description
	task.ScheduledStart = req.ScheduledStart
	task.ScheduledEnd = req.ScheduledEnd
	task.UpdatedAt = &now
	task.Tags = tags

	details := "Task details updated"
	history := s.historyEntry(task, constants.ActionUpdated, callerID, details, nil, nil, now)

	if err := s.repo.SaveWithTags(ctx, task, tags, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID string, taskID uint) error {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if task.CreatedBy != callerID || constants.Terminal(task.Status) {
		return apperrors.ErrTaskNotFound
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return apperrors.ErrDependencyUnavailable
	}

	return nil
}

// AssignTask assigns, reassigns or (with an empty email) unassigns.
// The creator may target anyone; any user may assign a task to
// themselves.
func (s *TaskService) AssignTask(ctx context.Context, callerID string, taskID uint, assigneeEmail string) (*dto.TaskResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskActionNotAllowed)
	if err != nil {
		return nil, err
	}

	var assignee *model.User
	if assigneeEmail != "" {
		assignee, err = s.users.ResolveByEmail(ctx, assigneeEmail)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskActionNotAllowed
		}
		if err != nil {
			return nil, apperrors.ErrDependencyUnavailable
		}
	}

	selfAssignment := assignee != nil && assignee.ID == callerID
	if task.CreatedBy != callerID && !selfAssignment {
		return nil, apperrors.ErrTaskActionNotAllowed
	}
	if constants.Terminal(task.Status) {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	now := time.Now().UTC()
	oldStatus := task.Status
	oldAssignee := task.AssignedTo

	var history *model.TaskHistory
	if assignee == nil {
		task.AssignedTo = nil
		task.Status = constants.StatusPending
		history = s.transitionEntry(task, constants.ActionUnassigned, callerID, "Task unassigned", oldStatus, now)
	} else {
		task.AssignedTo = &assignee.ID
		task.Status = constants.StatusAssigned

		action := constants.ActionAssigned
		if oldAssignee != nil {
			action = constants.ActionReassigned
		}
		details := fmt.Sprintf("Task assigned to %s", assigneeEmail)
		history = s.transitionEntry(task, action, callerID, details, oldStatus, now)
	}

	task.UpdatedAt = &now

	if err := s.repo.Save(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

// AcceptRejectTask is the assignee's answer to an assignment.
func (s *TaskService) AcceptRejectTask(ctx context.Context, callerID string, taskID uint, req dto.AcceptRejectRequest) (*dto.TaskResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskActionNotAllowed)
	if err != nil {
		return nil, err
	}

	if task.AssignedTo == nil || *task.AssignedTo != callerID {
		return nil, apperrors.ErrTaskActionNotAllowed
	}
	if task.Status != constants.StatusAssigned {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	now := time.Now().UTC()
	oldStatus := task.Status

	var history *model.TaskHistory
	if req.Accept {
		task.Status = constants.StatusAccepted
		task.RejectionReason = nil
		history = s.transitionEntry(task, constants.ActionStatusChanged, callerID, "Task accepted by assignee", oldStatus, now)
	} else {
		task.Status = constants.StatusRejected
		task.RejectionReason = req.RejectionReason
		task.AssignedTo = nil
		details := fmt.Sprintf("Task rejected: %s", deref(req.RejectionReason))
		history = s.transitionEntry(task, constants.ActionStatusChanged, callerID, details, oldStatus, now)
	}

	task.UpdatedAt = &now

	if err := s.repo.Save(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

// UpdateTaskStatus is the generic status move. Entering in_progress
// requires both scheduled instants to be present.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, callerID string, taskID uint, status constants.TaskStatus) (*dto.TaskResponse, error) {
	if !constants.ValidStatus(status) {
		return nil, apperrors.NewValidation("invalid status value")
	}

	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskActionNotAllowed)
	if err != nil {
		return nil, err
	}

	if !isCreatorOrAssignee(task, callerID) || constants.Terminal(task.Status) {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	if status == constants.StatusInProgress {
		if task.ScheduledStart == nil || task.ScheduledEnd == nil {
			return nil, apperrors.ErrTaskActionNotAllowed
		}
	}

	now := time.Now().UTC()
	oldStatus := task.Status
	task.Status = status
	task.UpdatedAt = &now

	details := fmt.Sprintf("Status changed from %s to %s", oldStatus, status)
	history := s.transitionEntry(task, constants.ActionStatusChanged, callerID, details, oldStatus, now)

	if err := s.repo.Save(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

// CompleteTask submits finished work for the owner's approval.
func (s *TaskService) CompleteTask(ctx context.Context, callerID string, taskID uint, req dto.CompleteTaskRequest) (*dto.TaskResponse, error) {
	if req.ActualStart == nil || req.ActualEnd == nil {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskActionNotAllowed)
	if err != nil {
		return nil, err
	}

	if task.AssignedTo == nil || *task.AssignedTo != callerID {
		return nil, apperrors.ErrTaskActionNotAllowed
	}
	if task.Status != constants.StatusInProgress && task.Status != constants.StatusAccepted {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	now := time.Now().UTC()
	oldStatus := task.Status
	task.ActualStart = req.ActualStart
	task.ActualEnd = req.ActualEnd
	task.Status = constants.StatusPendingApproval
	task.UpdatedAt = &now

	details := fmt.Sprintf(
		"Task completed and pending approval. Actual time: %s - %s",
		req.ActualStart.Format(time.RFC3339), req.ActualEnd.Format(time.RFC3339),
	)
	history := s.transitionEntry(task, constants.ActionStatusChanged, callerID, details, oldStatus, now)

	if err := s.repo.Save(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

// ApproveRejectTask is the owner's verdict on submitted work. A
// rejection sends the task back to the assignee.
func (s *TaskService) ApproveRejectTask(ctx context.Context, callerID string, taskID uint, req dto.ApproveRejectRequest) (*dto.TaskResponse, error) {
	task, err := s.loadForTransition(ctx, taskID, apperrors.ErrTaskActionNotAllowed)
	if err != nil {
		return nil, err
	}

	if task.CreatedBy != callerID {
		return nil, apperrors.ErrTaskActionNotAllowed
	}
	if task.Status != constants.StatusPendingApproval {
		return nil, apperrors.ErrTaskActionNotAllowed
	}

	now := time.Now().UTC()
	oldStatus := task.Status

	var history *model.TaskHistory
	if req.Approve {
		task.Status = constants.StatusApproved
		task.CompletedAt = &now
		task.RejectionReason = nil
		history = s.transitionEntry(task, constants.ActionApproved, callerID, "Task approved by owner", oldStatus, now)
	} else {
		task.Status = constants.StatusAssigned
		task.RejectionReason = req.RejectionReason
		details := fmt.Sprintf("Task rejected by owner: %s", deref(req.RejectionReason))
		history = s.transitionEntry(task, constants.ActionRejected, callerID, details, oldStatus, now)
	}

	task.UpdatedAt = &now

	if err := s.repo.Save(ctx, task, history); err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	return s.project(ctx, task)
}

func (s *TaskService) loadForTransition(ctx context.Context, taskID uint, guardErr error) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, guardErr
	}
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}
	return task, nil
}

// transitionEntry records a status move: old and new status are set
// only when the status actually changed.
func (s *TaskService) transitionEntry(task *model.Task, action, performedBy, details string, oldStatus constants.TaskStatus, at time.Time) *model.TaskHistory {
	if oldStatus == task.Status {
		return s.historyEntry(task, action, performedBy, details, nil, nil, at)
	}
	old := oldStatus
	cur := task.Status
	return s.historyEntry(task, action, performedBy, details, &old, &cur, at)
}

func (s *TaskService) historyEntry(task *model.Task, action, performedBy, details string, oldStatus, newStatus *constants.TaskStatus, at time.Time) *model.TaskHistory {
	return &model.TaskHistory{
		TaskID:      task.ID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     &details,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		PerformedAt: at,
	}
}

func isCreatorOrAssignee(task *model.Task, userID string) bool {
	if task.CreatedBy == userID {
		return true
	}
	return task.AssignedTo != nil && *task.AssignedTo == userID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
