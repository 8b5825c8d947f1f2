package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	subtaskRepo repositories.SubtaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, subtaskRepo repositories.SubtaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		subtaskRepo: subtaskRepo,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uint, filter repositories.TaskListFilter) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		UserID:   userID,
		Title:    strings.TrimSpace(req.Title),
		Priority: 3,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.EstimatedMinutes != nil {
		task.EstimatedMinutes = *req.EstimatedMinutes
	}
	if req.DueAt != nil {
		due := req.DueAt.UTC()
		task.DueAt = &due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDWithSubtasks(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = *req.Description
	} else if req.DescriptionSet {
		task.Description = ""
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.EstimatedMinutes != nil {
		task.EstimatedMinutes = *req.EstimatedMinutes
	}
	if req.DueAt != nil {
		due := req.DueAt.UTC()
		task.DueAt = &due
	} else if req.DueAtSet {
		task.DueAt = nil
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return s.GetTask(ctx, userID, taskID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uint) error {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrTaskNotFound
		}
		return err
	}

	if err := s.taskRepo.DeleteCascade(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) CompleteTask(ctx context.Context, userID, taskID uint, complete, cascade bool) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	task.IsCompleted = complete
	task.UpdatedAt = time.Now().UTC()
	if err := s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to set task completion", "task_id", taskID, "error", err)
		return nil, err
	}

	if cascade {
		subtasks, err := s.subtaskRepo.ListByTask(ctx, taskID)
		if err != nil {
			return nil, err
		}
		ids := make([]uint, 0, len(subtasks))
		for _, st := range subtasks {
			ids = append(ids, st.ID)
		}
		if err := s.subtaskRepo.SetCompleted(ctx, ids, complete); err != nil {
			logger.ErrorContext(ctx, "Failed to cascade completion", "task_id", taskID, "error", err)
			return nil, err
		}
	}

	logger.InfoContext(ctx, "Task completion set",
		"task_id", taskID, "complete", complete, "cascade", cascade)

	return s.GetTask(ctx, userID, taskID)
}
