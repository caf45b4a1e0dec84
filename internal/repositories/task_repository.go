package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "time-management.com/time-management/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts the task together with its history rows in one
// transaction. Tag links for pre-loaded tags are written as part of
// the same insert.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task, history ...*model.TaskHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return appendHistory(tx, task.ID, history)
	})
}

// Save persists a mutated task and its audit rows atomically. Tag
// associations are left untouched; transitions never change them.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task, history ...*model.TaskHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		return appendHistory(tx, task.ID, history)
	})
}

// SaveWithTags is Save plus a full replace of the task's tag set,
// still within a single transaction.
func (r *TaskRepository) SaveWithTags(ctx context.Context, task *model.Task, tags []model.Tag, history ...*model.TaskHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		if err := tx.Model(task).Association("Tags").Replace(tags); err != nil {
			return err
		}
		return appendHistory(tx, task.ID, history)
	})
}

// Delete removes the task, its tag links and every history row.
// sqlite does not reliably enforce foreign keys, so the cascade is
// explicit.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Tags").First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByCreator(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("created_by = ?", userID).
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("assigned_to = ?", userID).
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByCreatorOrAssignee(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("created_by = ? OR assigned_to = ?", userID, userID).
		Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListHistory(ctx context.Context, taskID uint) ([]model.TaskHistory, error) {
	var history []model.TaskHistory
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("performed_at desc, id desc").Find(&history).Error
	return history, err
}

func (r *TaskRepository) CountHistory(ctx context.Context, taskID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskHistory{}).
		Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

func appendHistory(tx *gorm.DB, taskID uint, history []*model.TaskHistory) error {
	for _, h := range history {
		h.TaskID = taskID
		if err := tx.Create(h).Error; err != nil {
			return err
		}
	}
	return nil
}
