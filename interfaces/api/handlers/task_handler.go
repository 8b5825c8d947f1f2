package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// parseID parses a numeric path parameter. Zero is let through so it 404s
// like any other id no task has.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// completeDefaults applies the request defaults: complete=true, cascade=false.
func completeDefaults(req *dto.CompleteRequest) (complete, cascade bool) {
	complete = true
	if req.Complete != nil {
		complete = *req.Complete
	}
	return complete, req.Cascade
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var query dto.TaskListQuery
	if err := c.QueryParser(&query); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&query); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	filter := repositories.TaskListFilter{
		Search:        query.Search,
		Priority:      query.Priority,
		DueWithinDays: query.DueWithinDays,
		SortBy:        query.SortBy,
	}

	tasks, err := h.taskService.ListTasks(ctx, sess.UserID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", sess.UserID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, dto.TaskToResponse(task))
	}
	return utils.SuccessResponse(c, responses)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, sess.UserID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "user_id", sess.UserID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, sess.UserID, taskID)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	// An explicit null clears description/due_at; after unmarshaling it
	// looks like an absent key, so check for the raw keys.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err == nil {
		_, req.DescriptionSet = raw["description"]
		_, req.DueAtSet = raw["due_at"]
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, sess.UserID, taskID, &req)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, sess.UserID, taskID); err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	complete, cascade := completeDefaults(&req)

	task, err := h.taskService.CompleteTask(ctx, sess.UserID, taskID, complete, cascade)
	if err != nil {
		return h.taskError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) taskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrTaskNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}
	logger.ErrorContext(c.UserContext(), "Task operation failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}
