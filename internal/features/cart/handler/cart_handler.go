package handler

import (
	"errors"
	"net/http"

	"storefront-tracker/internal/features/cart/domain"
	"storefront-tracker/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	service *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s *service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: msg, RayID: rayID(c)})
}

func upstreamError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
}

// GetCart godoc
// @Summary Get a customer's cart
// @Tags cart
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.CartItem
// @Failure 502 {object} ErrorResponse
// @Router /cart/{userId} [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	items, err := h.service.ItemsForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(items)
}

// AddItem godoc
// @Summary Add a product to a cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body domain.AddItemInput true "Item to add"
// @Success 201 {object} domain.CartItem
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var input domain.AddItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.service.AddItem(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) || errors.Is(err, domain.ErrInvalidQuantity) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateItem godoc
// @Summary Change a cart line's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param update body object true "New quantity"
// @Success 200 {object} domain.CartItem
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.service.UpdateQuantity(c.UserContext(), c.Params("id"), input.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) || errors.Is(err, domain.ErrInvalidQuantity) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, err)
	}

	return c.JSON(item)
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Param id path string true "Cart item ID"
// @Param userId query string true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	err := h.service.RemoveItem(c.UserContext(), c.Params("id"), c.Query("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return badRequest(c, err.Error())
		}
		return upstreamError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
