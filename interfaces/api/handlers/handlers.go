package handlers

import (
	"todo-backend/domain/services"
	"todo-backend/infrastructure/session"
	"todo-backend/pkg/config"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	AuthService    services.AuthService
	TaskService    services.TaskService
	SubtaskService services.SubtaskService
	Sessions       *session.Manager
	SessionConfig  config.SessionConfig
}

type Handlers struct {
	AuthHandler    *AuthHandler
	TaskHandler    *TaskHandler
	SubtaskHandler *SubtaskHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(s.AuthService, s.Sessions, s.SessionConfig),
		TaskHandler:    NewTaskHandler(s.TaskService),
		SubtaskHandler: NewSubtaskHandler(s.SubtaskService),
	}
}
