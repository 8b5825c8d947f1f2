package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

// Subtask operations return the parent task alongside the subtask(s) because
// responses expose effective priority/estimate/due values inherited from it.
type SubtaskService interface {
	ListSubtasks(ctx context.Context, userID, taskID uint) ([]*models.Subtask, *models.Task, error)
	CreateSubtask(ctx context.Context, userID, taskID uint, req *dto.CreateSubtaskRequest) (*models.Subtask, *models.Task, error)
	GetSubtask(ctx context.Context, userID, subtaskID uint) (*models.Subtask, *models.Task, error)
	UpdateSubtask(ctx context.Context, userID, subtaskID uint, req *dto.UpdateSubtaskRequest) (*models.Subtask, *models.Task, error)
	// DeleteSubtask removes the subtask and its nested children.
	DeleteSubtask(ctx context.Context, userID, subtaskID uint) error
	CompleteSubtask(ctx context.Context, userID, subtaskID uint, complete, cascade bool) (*models.Subtask, *models.Task, error)
}
