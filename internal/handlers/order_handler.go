package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and order reads for customers, plus the
// admin order console.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer order routes behind AuthRequired.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetMyOrders)
	orderRoutes.Post("/", h.HandleCheckout)
	orderRoutes.Get("/:id", h.HandleGetMyOrderByID)
}

// RegisterAdminRoutes registers the admin order routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetAllOrders)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// HandleCheckout turns the caller's cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req struct {
		AddressID string `json:"address_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.AddressID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "address_id is required",
		})
	}

	order, err := h.service.Checkout(c.Context(), userID, req.AddressID)
	if err != nil {
		log.Printf("Error during checkout for user %s: %v", userID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Shipping address not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetMyOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	orders, err := h.service.GetOrdersForUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleGetMyOrderByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetMyOrderByID(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	orderID := c.Params("id")

	order, err := h.service.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
		})
	}
	return c.JSON(order)
}

// HandleGetAllOrders returns every order. Admin only.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleUpdateStatus moves an order along the status transition table.
// Admin only.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "status is required",
		})
	}

	if err := h.service.UpdateStatus(orderID, req.Status); err != nil {
		log.Printf("Error updating status for order %s: %v", orderID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"status":  req.Status,
	})
}
