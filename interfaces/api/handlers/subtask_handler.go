package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type SubtaskHandler struct {
	subtaskService services.SubtaskService
}

func NewSubtaskHandler(subtaskService services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{
		subtaskService: subtaskService,
	}
}

func (h *SubtaskHandler) ListByTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	subtasks, task, err := h.subtaskService.ListSubtasks(ctx, sess.UserID, taskID)
	if err != nil {
		return h.subtaskError(c, err)
	}

	responses := make([]dto.SubtaskResponse, 0, len(subtasks))
	for _, st := range subtasks {
		responses = append(responses, dto.SubtaskToResponse(st, task))
	}
	return utils.SuccessResponse(c, responses)
}

func (h *SubtaskHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	subtask, task, err := h.subtaskService.CreateSubtask(ctx, sess.UserID, taskID, &req)
	if err != nil {
		return h.subtaskError(c, err)
	}

	return utils.CreatedResponse(c, dto.SubtaskToResponse(subtask, task))
}

func (h *SubtaskHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	subtaskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	subtask, task, err := h.subtaskService.GetSubtask(ctx, sess.UserID, subtaskID)
	if err != nil {
		return h.subtaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubtaskToResponse(subtask, task))
}

func (h *SubtaskHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	subtaskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	var req dto.UpdateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	// Reparenting to null and clearing the description look identical to
	// an absent key after unmarshaling, so check for the raw keys.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err == nil {
		_, req.ParentSet = raw["parent_subtask_id"]
		_, req.DescriptionSet = raw["description"]
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	subtask, task, err := h.subtaskService.UpdateSubtask(ctx, sess.UserID, subtaskID, &req)
	if err != nil {
		return h.subtaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubtaskToResponse(subtask, task))
}

func (h *SubtaskHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	subtaskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	if err := h.subtaskService.DeleteSubtask(ctx, sess.UserID, subtaskID); err != nil {
		return h.subtaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SuccessResponse{Success: true})
}

func (h *SubtaskHandler) Complete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	subtaskID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subtask ID")
	}

	var req dto.CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	complete, cascade := completeDefaults(&req)

	subtask, task, err := h.subtaskService.CompleteSubtask(ctx, sess.UserID, subtaskID, complete, cascade)
	if err != nil {
		return h.subtaskError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubtaskToResponse(subtask, task))
}

func (h *SubtaskHandler) subtaskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrSubtaskNotFound):
		return utils.NotFoundResponse(c, "Subtask not found")
	case errors.Is(err, services.ErrParentNotFound):
		return utils.NotFoundResponse(c, "Parent subtask not found under this task")
	case errors.Is(err, services.ErrInvalidParent):
		return utils.BadRequestResponse(c, "Cannot set a subtask or its descendant as its own parent")
	}
	logger.ErrorContext(c.UserContext(), "Subtask operation failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}
