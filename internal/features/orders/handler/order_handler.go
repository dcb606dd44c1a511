package handler

import (
	"errors"
	"net/http"

	"storefront-tracker/internal/core/logger"
	"storefront-tracker/internal/features/orders/domain"
	"storefront-tracker/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ListOrders handles the request to list every order.
// @Summary List orders
// @Description Fetch every order visible to the operator.
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles the request to retrieve a single order.
// @Summary Get Order by ID
// @Description Fetch order details using Order ID.
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	order, err := h.service.GetOrder(c.UserContext(), orderID)
	if err != nil {
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)

		status := http.StatusInternalServerError
		msg := err.Error()
		if errors.Is(err, domain.ErrOrderNotFound) {
			status = http.StatusNotFound
			msg = "Order not found"
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// GetUserOrders handles the request to list one customer's orders.
// @Summary List a customer's orders
// @Description Fetch the orders belonging to one customer.
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Order
// @Failure 500 {object} ErrorResponse
// @Router /orders/user/{userId} [get]
func (h *OrderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")

	orders, err := h.service.OrdersForUser(c.UserContext(), userID)
	if err != nil {
		logger.Get().Error("Failed to list user orders",
			zap.String("user_id", userID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// CreateOrder handles the request to place a new order.
// @Summary Create an order
// @Description Places a new order on behalf of a customer.
// @Accept json
// @Produce json
// @Param order body domain.CreateOrderInput true "Order to place"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var input domain.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.CreateOrder(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to create order",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(order)
}
