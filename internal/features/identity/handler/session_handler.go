package handler

import (
	"errors"
	"net/http"

	"storefront-tracker/internal/core/logger"
	"storefront-tracker/internal/features/identity/domain"
	"storefront-tracker/internal/features/identity/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles HTTP requests for sessions.
type SessionHandler struct {
	service ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// OpenSessionRequest represents the request body for opening a session.
type OpenSessionRequest struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Name   string      `json:"name"`
	Phone  string      `json:"phone"`
}

// OpenSession handles POST /session.
// @Summary Open a session
// @Description Stores a server-side session for the given identity and returns its id.
// @Tags Session
// @Accept json
// @Produce json
// @Param session body OpenSessionRequest true "Identity details"
// @Success 201 {object} domain.Session
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session [post]
func (h *SessionHandler) OpenSession(c *fiber.Ctx) error {
	var req OpenSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.service.Open(c.UserContext(), req.UserID, req.Email, req.Role, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role. Must be ADMIN or USER",
			})
		}
		if errors.Is(err, domain.ErrInvalidEmail) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid email",
			})
		}
		logger.Get().Error("Failed to open session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(session)
}

// GetSession handles GET /session/:id.
// @Summary Resolve a session
// @Description Retrieves the identity behind a session id.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Session
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		logger.Get().Error("Failed to get session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(session)
}

// CloseSession handles DELETE /session/:id.
// @Summary Close a session
// @Description Removes a server-side session.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session/{id} [delete]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.service.Close(c.UserContext(), c.Params("id")); err != nil {
		logger.Get().Error("Failed to close session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Session closed",
	})
}
