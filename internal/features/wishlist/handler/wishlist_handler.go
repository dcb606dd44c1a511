package handler

import (
	"errors"
	"net/http"

	"storefront-tracker/internal/features/wishlist/domain"
	"storefront-tracker/internal/features/wishlist/service"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlist operations.
type WishlistHandler struct {
	service *service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(s *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: s}
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

// GetWishlist godoc
// @Summary Get a customer's wishlist
// @Tags wishlist
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.WishlistItem
// @Failure 502 {object} ErrorResponse
// @Router /wishlist/{userId} [get]
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	items, err := h.service.ItemsForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
	}
	return c.JSON(items)
}

// AddItem godoc
// @Summary Add a product to a wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param item body domain.AddItemInput true "Item to add"
// @Success 201 {object} domain.WishlistItem
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wishlist/items [post]
func (h *WishlistHandler) AddItem(c *fiber.Ctx) error {
	var input domain.AddItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: "invalid request body", RayID: rayID(c)})
	}

	item, err := h.service.AddItem(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
		}
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
	}

	return c.Status(http.StatusCreated).JSON(item)
}

// RemoveItem godoc
// @Summary Remove a wishlist entry
// @Tags wishlist
// @Param id path string true "Wishlist item ID"
// @Param userId query string true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wishlist/items/{id} [delete]
func (h *WishlistHandler) RemoveItem(c *fiber.Ctx) error {
	err := h.service.RemoveItem(c.UserContext(), c.Params("id"), c.Query("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
		}
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
	}

	return c.SendStatus(http.StatusNoContent)
}
