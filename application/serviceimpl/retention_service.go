package serviceimpl

import (
	"context"
	"time"

	"todo-backend/domain/repositories"
	"todo-backend/pkg/logger"
)

// RetentionService deletes tasks that have been completed for longer than
// the configured number of days, cascading to their subtasks. It runs from
// the scheduler; RETENTION_DAYS=0 disables it.
type RetentionService struct {
	taskRepo repositories.TaskRepository
	days     int
}

func NewRetentionService(taskRepo repositories.TaskRepository, days int) *RetentionService {
	return &RetentionService{
		taskRepo: taskRepo,
		days:     days,
	}
}

func (s *RetentionService) Enabled() bool {
	return s.days > 0
}

func (s *RetentionService) RunOnce(ctx context.Context) {
	if !s.Enabled() {
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -s.days)
	deleted, err := s.taskRepo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("Retention sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("Retention sweep removed completed tasks",
			"deleted", deleted, "older_than_days", s.days)
	}
}
