package mysql

import (
	"context"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type SubtaskRepositoryImpl struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) repositories.SubtaskRepository {
	return &SubtaskRepositoryImpl{db: db}
}

func (r *SubtaskRepositoryImpl) Create(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

func (r *SubtaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&subtask).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (r *SubtaskRepositoryImpl) ListByTask(ctx context.Context, taskID uint) ([]*models.Subtask, error) {
	var subtasks []*models.Subtask
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("order_index ASC").Order("id ASC").
		Find(&subtasks).Error
	return subtasks, err
}

func (r *SubtaskRepositoryImpl) Save(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Save(subtask).Error
}

func (r *SubtaskRepositoryImpl) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Delete(&models.Subtask{}).Error
	})
}

func (r *SubtaskRepositoryImpl) SetCompleted(ctx context.Context, ids []uint, completed bool) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Subtask{}).
		Where("id IN ?", ids).
		Update("is_completed", completed).Error
}
