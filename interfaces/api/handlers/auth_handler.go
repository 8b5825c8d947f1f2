package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
	sessions    *session.Manager
	sessionCfg  config.SessionConfig
}

func NewAuthHandler(authService services.AuthService, sessions *session.Manager, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		sessionCfg:  sessionCfg,
	}
}

// Login authenticates by username, creating the user on first login, and
// sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.ErrorContext(ctx, "Login failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	sess, err := h.sessions.Issue(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create session", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	middleware.SetSessionCookie(c, h.sessionCfg, sess.ID, h.sessions.TTLSeconds())

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return utils.SuccessResponse(c, dto.LoginResponse{User: dto.UserToResponse(user)})
}

// Logout destroys the server-side session and expires the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sessionID := c.Cookies(h.sessionCfg.CookieName)
	if err := h.sessions.Destroy(ctx, sessionID); err != nil {
		logger.ErrorContext(ctx, "Failed to destroy session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	middleware.ClearSessionCookie(c, h.sessionCfg)

	return utils.SuccessResponse(c, dto.SuccessResponse{Success: true})
}

// Me returns the current user, or a null user when not logged in. A session
// pointing at a vanished user is cleared on the spot.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		return utils.SuccessResponse(c, dto.MeResponse{User: nil})
	}

	user, err := h.authService.GetUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			_ = h.sessions.Destroy(ctx, sess.ID)
			middleware.ClearSessionCookie(c, h.sessionCfg)
			return utils.SuccessResponse(c, dto.MeResponse{User: nil})
		}
		logger.ErrorContext(ctx, "Failed to resolve session user", "user_id", sess.UserID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	resp := dto.UserToResponse(user)
	return utils.SuccessResponse(c, dto.MeResponse{User: &resp})
}
