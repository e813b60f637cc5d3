package handlers

import (
	"errors"
	"log"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles wishlist reads and mutations for both guests
// and authenticated users.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes behind OptionalAuth.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGet)
	wishlistRoutes.Post("/items", h.HandleAdd)
	wishlistRoutes.Delete("/items/:productID", h.HandleRemove)
}

// HandleGet returns the wishlist in insertion order.
func (h *WishlistHandler) HandleGet(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	items, err := h.service.Get(c.Context(), shopper)
	if err != nil {
		log.Printf("Error getting wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
		})
	}
	return c.JSON(fiber.Map{"items": items})
}

// HandleAdd puts a product on the wishlist; adding a product that is
// already present changes nothing.
func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	var req struct {
		ProductID string `json:"product_id"`
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

	items, err := h.service.Add(c.Context(), shopper, req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error adding to wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to wishlist",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"items": items})
}

// HandleRemove drops a product from the wishlist.
func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	shopper, ok := requireShopper(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authentication or an X-Guest-ID header is required",
		})
	}

	items, err := h.service.Remove(c.Context(), shopper, c.Params("productID"))
	if err != nil {
		log.Printf("Error removing from wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
		})
	}
	return c.JSON(fiber.Map{"items": items})
}
