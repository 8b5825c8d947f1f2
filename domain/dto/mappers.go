package dto

import (
	"time"

	"todo-backend/domain/models"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func UserToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func TaskToResponse(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      optionalString(t.Description),
		Priority:         t.Priority,
		EstimatedMinutes: t.EstimatedMinutes,
		DueAt:            formatTimePtr(t.DueAt),
		IsCompleted:      t.IsCompleted,
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

// TaskToDetailResponse serializes the task with its subtasks. Effective
// fields on each subtask come from the task itself.
func TaskToDetailResponse(t *models.Task) TaskDetailResponse {
	subtasks := make([]SubtaskResponse, 0, len(t.Subtasks))
	for i := range t.Subtasks {
		subtasks = append(subtasks, SubtaskToResponse(&t.Subtasks[i], t))
	}
	return TaskDetailResponse{
		TaskResponse: TaskToResponse(t),
		Subtasks:     subtasks,
	}
}

func SubtaskToResponse(st *models.Subtask, parent *models.Task) SubtaskResponse {
	resp := SubtaskResponse{
		ID:              st.ID,
		TaskID:          st.TaskID,
		ParentSubtaskID: st.ParentSubtaskID,
		Title:           st.Title,
		Description:     optionalString(st.Description),
		IsCompleted:     st.IsCompleted,
		OrderIndex:      st.OrderIndex,
		CreatedAt:       formatTime(st.CreatedAt),
		UpdatedAt:       formatTime(st.UpdatedAt),
	}
	if parent != nil {
		resp.EffectivePriority = &parent.Priority
		resp.EffectiveEstimatedMinutes = &parent.EstimatedMinutes
		resp.EffectiveDueAt = formatTimePtr(parent.DueAt)
	}
	return resp
}
