package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// SubtaskRepository is unscoped by owner; ownership is checked through the
// parent task by the service layer.
type SubtaskRepository interface {
	Create(ctx context.Context, subtask *models.Subtask) error
	GetByID(ctx context.Context, id uint) (*models.Subtask, error)
	ListByTask(ctx context.Context, taskID uint) ([]*models.Subtask, error)
	Save(ctx context.Context, subtask *models.Subtask) error
	// DeleteByIDs removes the given subtasks in one transaction.
	DeleteByIDs(ctx context.Context, ids []uint) error
	// SetCompleted flips is_completed on the given subtasks in one statement.
	SetCompleted(ctx context.Context, ids []uint, completed bool) error
}
