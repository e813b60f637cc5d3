package handlers

import (
	"errors"
	"log"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// shopperFrom builds the cart/wishlist owner for the request: the
// authenticated user when a valid token was presented, otherwise the
// guest token from the X-Guest-ID header.
func shopperFrom(c *fiber.Ctx) services.Shopper {
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		return services.Shopper{UserID: userID}
	}
	return services.Shopper{GuestID: c.Get("X-Guest-ID")}
}

// CartHandler handles cart reads and mutations for both guests and
// authenticated users.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes. The group must sit behind
// OptionalAuth so token claims are available when present.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/items", h.HandleAdd)
	cartRoutes.Put("/items/:productID", h.HandleSetQuantity)
	cartRoutes.Delete("/items/:productID", h.HandleRemove)
}

func requireShopper(c *fiber.Ctx) (services.Shopper, bool) {
	shopper := shopperFrom(c)
	if !shopper.Valid() {
		return shopper, false
	}
	return shopper, true
}

// HandleGet returns the derived cart view.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	view, err := h.service.Get(c.Context(), shopper)
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
		})
	}
	return c.JSON(view)
}

// HandleAdd adds a product to the cart.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	view, err := h.service.Add(c.Context(), shopper, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error adding to cart: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleSetQuantity sets the quantity of a cart item. Quantities below
// 1 are ignored and the unchanged cart is returned.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	view, err := h.service.SetQuantity(c.Context(), shopper, c.Params("productID"), req.Quantity)
	if err != nil {
		log.Printf("Error setting cart quantity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(view)
}

// HandleRemove removes a product from the cart.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	view, err := h.service.Remove(c.Context(), shopper, c.Params("productID"))
	if err != nil {
		log.Printf("Error removing from cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(view)
}
