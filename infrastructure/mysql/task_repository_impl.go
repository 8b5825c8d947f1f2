package mysql

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByIDWithSubtasks(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, id ASC")
		}).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, userID uint, filter repositories.TaskListFilter) ([]*models.Task, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID)

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.DueWithinDays != nil && *filter.DueWithinDays >= 0 {
		until := time.Now().UTC().AddDate(0, 0, *filter.DueWithinDays)
		q = q.Where("due_at IS NOT NULL AND due_at <= ?", until)
	}

	switch filter.SortBy {
	case "priority":
		q = q.Order("priority ASC").Order("created_at DESC")
	case "due_at":
		// NULL due dates sort last
		q = q.Order("due_at IS NULL").Order("due_at ASC")
	case "estimated_minutes":
		q = q.Order("estimated_minutes ASC").Order("created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var tasks []*models.Task
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Save(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// DeleteCascade removes subtasks first, then the task, inside one
// transaction. The FK also declares ON DELETE CASCADE; doing it explicitly
// keeps the behavior portable across backends.
func (r *TaskRepositoryImpl) DeleteCascade(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
}

func (r *TaskRepositoryImpl) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Task{}).
			Where("is_completed = ? AND updated_at < ?", true, cutoff).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("task_id IN ?", ids).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Task{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
