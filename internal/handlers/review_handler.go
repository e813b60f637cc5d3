package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review submission, the public per-product read
// and the admin moderation console.
type ReviewHandler struct {
	reviews  *services.ReviewService
	auth     *services.AuthService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *services.ReviewService, auth *services.AuthService) *ReviewHandler {
	return &ReviewHandler{
		reviews:  reviews,
		auth:     auth,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the approved-reviews read.
func (h *ReviewHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleApprovedForProduct)
}

// RegisterProtectedRoutes registers review submission behind AuthRequired.
func (h *ReviewHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleCreate)
}

// RegisterAdminRoutes registers the moderation routes.
func (h *ReviewHandler) RegisterAdminRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleListAll)
	reviewRoutes.Patch("/:id/approval", h.HandleSetApproval)
	reviewRoutes.Delete("/:id", h.HandleDelete)
}

// HandleApprovedForProduct returns the approved reviews of a product
// with the derived rating aggregate.
func (h *ReviewHandler) HandleApprovedForProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	reviews, err := h.reviews.ApprovedForProduct(productID)
	if err != nil {
		log.Printf("Error getting reviews for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
		})
	}
	summary, err := h.reviews.SummaryForProduct(productID)
	if err != nil {
		log.Printf("Error summarizing reviews for product %s: %v", productID, err)
	}
	return c.JSON(fiber.Map{
		"reviews": reviews,
		"summary": summary,
	})
}

// HandleCreate submits a review. The author name is the caller's
// resolved display name.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	email, _ := c.Locals("email").(string)

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(review); err != nil {
		return validationErrorResponse(c, err)
	}

	user, _ := h.auth.ResolveProfile(userID, email)
	if err := h.reviews.Create(userID, user.DisplayName(), &review); err != nil {
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not submit review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleListAll returns every review, unapproved included. Admin only.
func (h *ReviewHandler) HandleListAll(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListAll()
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
		})
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// HandleSetApproval flips a review's approval flag. Admin only.
func (h *ReviewHandler) HandleSetApproval(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	var req struct {
		Approved bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.reviews.SetApproval(reviewID, req.Approved); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review not found",
			})
		}
		log.Printf("Error setting approval for review %s: %v", reviewID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update review",
		})
	}
	return c.JSON(fiber.Map{"message": "Review updated"})
}

// HandleDelete removes a review. Admin only.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.reviews.Delete(reviewID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review not found",
			})
		}
		log.Printf("Error deleting review %s: %v", reviewID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete review",
		})
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
