package handler

import (
	"errors"

	"storefront-tracker/internal/features/tracking/domain"
	"storefront-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetBoard godoc
// @Summary Get the operator tracking board
// @Description Lists every order together with its tracking history and derived progress state
// @Tags tracking
// @Produce json
// @Success 200 {array} service.BoardItem
// @Failure 500 {object} ErrorResponse
// @Router /tracking/board [get]
func (h *TrackingHandler) GetBoard(c *fiber.Ctx) error {
	items, err := h.trackingService.Board(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(items)
}

// GetMyOrders godoc
// @Summary Get a customer's orders with tracking
// @Description Groups the customer's tracking feed into per-order histories with derived progress state
// @Tags tracking
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} service.CustomerOrder
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/my/{userId} [get]
func (h *TrackingHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "user id is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	orders, err := h.trackingService.MyOrders(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(orders)
}

// AddUpdate godoc
// @Summary Append a tracking update to an order
// @Description Records a new tracking event and returns the order's refreshed history
// @Tags tracking
// @Accept json
// @Produce json
// @Param update body domain.UpdateInput true "Tracking update"
// @Success 201 {object} service.UpdateResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/updates [post]
func (h *TrackingHandler) AddUpdate(c *fiber.Ctx) error {
	var input domain.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	result, err := h.trackingService.AddUpdate(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) || errors.Is(err, service.ErrMissingOrderID) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
