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

type SubtaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	subtaskRepo repositories.SubtaskRepository
}

func NewSubtaskService(taskRepo repositories.TaskRepository, subtaskRepo repositories.SubtaskRepository) services.SubtaskService {
	return &SubtaskServiceImpl{
		taskRepo:    taskRepo,
		subtaskRepo: subtaskRepo,
	}
}

// resolveOwned loads a subtask and proves ownership through its parent task.
// Both a missing subtask and a foreign owner produce ErrSubtaskNotFound so
// the caller cannot distinguish the two.
func (s *SubtaskServiceImpl) resolveOwned(ctx context.Context, userID, subtaskID uint) (*models.Subtask, *models.Task, error) {
	subtask, err := s.subtaskRepo.GetByID(ctx, subtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, services.ErrSubtaskNotFound
		}
		return nil, nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, userID, subtask.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, services.ErrSubtaskNotFound
		}
		return nil, nil, err
	}

	return subtask, task, nil
}

func (s *SubtaskServiceImpl) ListSubtasks(ctx context.Context, userID, taskID uint) ([]*models.Subtask, *models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, services.ErrTaskNotFound
		}
		return nil, nil, err
	}

	subtasks, err := s.subtaskRepo.ListByTask(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list subtasks", "task_id", taskID, "error", err)
		return nil, nil, err
	}
	return subtasks, task, nil
}

func (s *SubtaskServiceImpl) CreateSubtask(ctx context.Context, userID, taskID uint, req *dto.CreateSubtaskRequest) (*models.Subtask, *models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, services.ErrTaskNotFound
		}
		return nil, nil, err
	}

	if req.ParentSubtaskID != nil {
		parent, err := s.subtaskRepo.GetByID(ctx, *req.ParentSubtaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, services.ErrParentNotFound
			}
			return nil, nil, err
		}
		if parent.TaskID != taskID {
			return nil, nil, services.ErrParentNotFound
		}
	}

	subtask := &models.Subtask{
		TaskID:          taskID,
		ParentSubtaskID: req.ParentSubtaskID,
		Title:           strings.TrimSpace(req.Title),
	}
	if req.Description != nil {
		subtask.Description = *req.Description
	}
	if req.OrderIndex != nil {
		subtask.OrderIndex = *req.OrderIndex
	}

	if err := s.subtaskRepo.Create(ctx, subtask); err != nil {
		logger.ErrorContext(ctx, "Failed to create subtask", "task_id", taskID, "error", err)
		return nil, nil, err
	}

	logger.InfoContext(ctx, "Subtask created", "subtask_id", subtask.ID, "task_id", taskID)
	return subtask, task, nil
}

func (s *SubtaskServiceImpl) GetSubtask(ctx context.Context, userID, subtaskID uint) (*models.Subtask, *models.Task, error) {
	return s.resolveOwned(ctx, userID, subtaskID)
}

func (s *SubtaskServiceImpl) UpdateSubtask(ctx context.Context, userID, subtaskID uint, req *dto.UpdateSubtaskRequest) (*models.Subtask, *models.Task, error) {
	subtask, task, err := s.resolveOwned(ctx, userID, subtaskID)
	if err != nil {
		return nil, nil, err
	}

	if req.Title != nil {
		subtask.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		subtask.Description = *req.Description
	} else if req.DescriptionSet {
		subtask.Description = ""
	}
	if req.OrderIndex != nil {
		subtask.OrderIndex = *req.OrderIndex
	}

	if req.ParentSet {
		if req.ParentSubtaskID == nil {
			subtask.ParentSubtaskID = nil
		} else {
			if err := s.checkParent(ctx, subtask, *req.ParentSubtaskID); err != nil {
				return nil, nil, err
			}
			subtask.ParentSubtaskID = req.ParentSubtaskID
		}
	}

	subtask.UpdatedAt = time.Now().UTC()
	if err := s.subtaskRepo.Save(ctx, subtask); err != nil {
		logger.ErrorContext(ctx, "Failed to update subtask", "subtask_id", subtaskID, "error", err)
		return nil, nil, err
	}

	logger.InfoContext(ctx, "Subtask updated", "subtask_id", subtaskID)
	return subtask, task, nil
}

// checkParent rejects a new parent outside the subtask's task, the subtask
// itself, or any of its descendants (which would create a cycle).
func (s *SubtaskServiceImpl) checkParent(ctx context.Context, subtask *models.Subtask, parentID uint) error {
	if parentID == subtask.ID {
		return services.ErrInvalidParent
	}

	parent, err := s.subtaskRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrParentNotFound
		}
		return err
	}
	if parent.TaskID != subtask.TaskID {
		return services.ErrParentNotFound
	}

	descendants, err := s.descendantIDs(ctx, subtask)
	if err != nil {
		return err
	}
	for _, id := range descendants {
		if id == parentID {
			return services.ErrInvalidParent
		}
	}
	return nil
}

// descendantIDs walks the subtask tree within the task, excluding the root
// itself.
func (s *SubtaskServiceImpl) descendantIDs(ctx context.Context, root *models.Subtask) ([]uint, error) {
	all, err := s.subtaskRepo.ListByTask(ctx, root.TaskID)
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]uint)
	for _, st := range all {
		if st.ParentSubtaskID != nil {
			children[*st.ParentSubtaskID] = append(children[*st.ParentSubtaskID], st.ID)
		}
	}

	var out []uint
	queue := children[root.ID]
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, id)
		queue = append(queue, children[id]...)
	}
	return out, nil
}

func (s *SubtaskServiceImpl) DeleteSubtask(ctx context.Context, userID, subtaskID uint) error {
	subtask, _, err := s.resolveOwned(ctx, userID, subtaskID)
	if err != nil {
		return err
	}

	ids, err := s.descendantIDs(ctx, subtask)
	if err != nil {
		return err
	}
	ids = append(ids, subtask.ID)

	if err := s.subtaskRepo.DeleteByIDs(ctx, ids); err != nil {
		logger.ErrorContext(ctx, "Failed to delete subtask", "subtask_id", subtaskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Subtask deleted", "subtask_id", subtaskID, "removed", len(ids))
	return nil
}

func (s *SubtaskServiceImpl) CompleteSubtask(ctx context.Context, userID, subtaskID uint, complete, cascade bool) (*models.Subtask, *models.Task, error) {
	subtask, task, err := s.resolveOwned(ctx, userID, subtaskID)
	if err != nil {
		return nil, nil, err
	}

	subtask.IsCompleted = complete
	subtask.UpdatedAt = time.Now().UTC()
	if err := s.subtaskRepo.Save(ctx, subtask); err != nil {
		logger.ErrorContext(ctx, "Failed to set subtask completion", "subtask_id", subtaskID, "error", err)
		return nil, nil, err
	}

	if cascade {
		ids, err := s.descendantIDs(ctx, subtask)
		if err != nil {
			return nil, nil, err
		}
		if err := s.subtaskRepo.SetCompleted(ctx, ids, complete); err != nil {
			logger.ErrorContext(ctx, "Failed to cascade subtask completion", "subtask_id", subtaskID, "error", err)
			return nil, nil, err
		}
	}

	logger.InfoContext(ctx, "Subtask completion set",
		"subtask_id", subtaskID, "complete", complete, "cascade", cascade)
	return subtask, task, nil
}
