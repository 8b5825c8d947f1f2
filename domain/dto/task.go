package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title            string     `json:"title" validate:"required,min=1,max=255"`
	Description      *string    `json:"description" validate:"omitempty"`
	Priority         *int       `json:"priority" validate:"omitempty,min=0"`
	EstimatedMinutes *int       `json:"estimated_minutes" validate:"omitempty,min=0"`
	DueAt            *time.Time `json:"due_at" validate:"omitempty"`
}

// UpdateTaskRequest carries partial updates; nil pointers leave the field
// untouched unless the matching Set flag marks an explicit null.
type UpdateTaskRequest struct {
	Title            *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description      *string    `json:"description" validate:"omitempty"`
	Priority         *int       `json:"priority" validate:"omitempty,min=0"`
	EstimatedMinutes *int       `json:"estimated_minutes" validate:"omitempty,min=0"`
	DueAt            *time.Time `json:"due_at" validate:"omitempty"`
	// An explicit JSON null clears description/due_at; after unmarshaling
	// that is indistinguishable from an absent key, so the handler records
	// key presence from the raw body.
	DescriptionSet bool `json:"-"`
	DueAtSet       bool `json:"-"`
}

type TaskListQuery struct {
	Search        string `query:"search" validate:"omitempty,max=255"`
	Priority      *int   `query:"priority" validate:"omitempty,min=0"`
	DueWithinDays *int   `query:"due_within_days" validate:"omitempty,min=0"`
	SortBy        string `query:"sort_by" validate:"omitempty,oneof=priority due_at estimated_minutes created_at"`
}

// CompleteRequest toggles completion; complete defaults to true when absent,
// cascade to false.
type CompleteRequest struct {
	Complete *bool `json:"complete"`
	Cascade  bool  `json:"cascade"`
}

type TaskResponse struct {
	ID               uint    `json:"id"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	Priority         int     `json:"priority"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	DueAt            *string `json:"due_at"`
	IsCompleted      bool    `json:"is_completed"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// TaskDetailResponse is a task plus its nested subtasks.
type TaskDetailResponse struct {
	TaskResponse
	Subtasks []SubtaskResponse `json:"subtasks"`
}
