package dto

type CreateSubtaskRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	Description     *string `json:"description" validate:"omitempty"`
	ParentSubtaskID *uint   `json:"parent_subtask_id" validate:"omitempty"`
	OrderIndex      *int    `json:"order_index" validate:"omitempty,min=0"`
}

type UpdateSubtaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
	// ParentSet and DescriptionSet distinguish an explicit null from an
	// absent key: the raw JSON is inspected by the handler before
	// validation.
	ParentSubtaskID *uint `json:"parent_subtask_id" validate:"omitempty"`
	ParentSet       bool  `json:"-"`
	DescriptionSet  bool  `json:"-"`
}

// SubtaskResponse exposes effective_* values inherited from the parent task
// since subtasks carry no priority/estimate/due of their own.
type SubtaskResponse struct {
	ID                        uint    `json:"id"`
	TaskID                    uint    `json:"task_id"`
	ParentSubtaskID           *uint   `json:"parent_subtask_id"`
	Title                     string  `json:"title"`
	Description               *string `json:"description"`
	IsCompleted               bool    `json:"is_completed"`
	OrderIndex                int     `json:"order_index"`
	CreatedAt                 string  `json:"created_at"`
	UpdatedAt                 string  `json:"updated_at"`
	EffectivePriority         *int    `json:"effective_priority"`
	EffectiveEstimatedMinutes *int    `json:"effective_estimated_minutes"`
	EffectiveDueAt            *string `json:"effective_due_at"`
}
