package repositories

import (
	"context"
	"time"

	"todo-backend/domain/models"
)

// TaskListFilter narrows and orders an owner-scoped task listing.
type TaskListFilter struct {
	Search        string // LIKE match over title and description
	Priority      *int
	DueWithinDays *int   // due_at set and within now+N days
	SortBy        string // priority, due_at, estimated_minutes, created_at
}

// TaskRepository is owner-scoped throughout: every lookup carries the owning
// user id in the WHERE clause, so a foreign id behaves exactly like a missing
// one.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// GetByID returns the task only when it belongs to userID.
	GetByID(ctx context.Context, userID, taskID uint) (*models.Task, error)
	// GetByIDWithSubtasks preloads the task's subtasks.
	GetByIDWithSubtasks(ctx context.Context, userID, taskID uint) (*models.Task, error)
	ListByUser(ctx context.Context, userID uint, filter TaskListFilter) ([]*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	// DeleteCascade removes the task and all its subtasks in one transaction.
	DeleteCascade(ctx context.Context, task *models.Task) error
	// DeleteCompletedBefore removes tasks completed and not touched since the
	// cutoff, cascading to subtasks. Used by the retention sweep.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
