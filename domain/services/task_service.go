package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type TaskService interface {
	ListTasks(ctx context.Context, userID uint, filter repositories.TaskListFilter) ([]*models.Task, error)
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error)
	// GetTask returns the task with subtasks preloaded.
	GetTask(ctx context.Context, userID, taskID uint) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
	// CompleteTask sets completion; cascade recursively marks all subtasks.
	CompleteTask(ctx context.Context, userID, taskID uint, complete, cascade bool) (*models.Task, error)
}
