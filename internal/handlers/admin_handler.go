package handlers

import (
	"log"
	"strings"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin approval workflow: listing accounts
// awaiting approval and approving or rejecting them.
type AdminHandler struct {
	authService *services.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

// RegisterAdminRoutes registers the approval routes.
func (h *AdminHandler) RegisterAdminRoutes(router fiber.Router) {
	approvalRoutes := router.Group("/approvals")
	approvalRoutes.Get("/", h.HandleListPending)
	approvalRoutes.Post("/:id/approve", h.HandleApprove)
	approvalRoutes.Post("/:id/reject", h.HandleReject)
}

// HandleListPending returns every pending_admin account.
func (h *AdminHandler) HandleListPending(c *fiber.Ctx) error {
	pending, err := h.authService.ListPendingAdmins()
	if err != nil {
		log.Printf("Error listing pending admins: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve pending approvals",
		})
	}
	return c.JSON(fiber.Map{"pending": pending})
}

func (h *AdminHandler) handleRoleChange(c *fiber.Ctx, change func(string) error, successMessage string) error {
	userID := c.Params("id")
	if err := change(userID); err != nil {
		log.Printf("Error changing role for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "not permitted") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Role change not permitted",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not change role",
		})
	}
	return c.JSON(fiber.Map{"message": successMessage})
}

// HandleApprove promotes a pending_admin account to admin.
func (h *AdminHandler) HandleApprove(c *fiber.Ctx) error {
	return h.handleRoleChange(c, h.authService.ApproveAdmin, "Admin access approved")
}

// HandleReject demotes a pending_admin account back to a plain user.
func (h *AdminHandler) HandleReject(c *fiber.Ctx) error {
	return h.handleRoleChange(c, h.authService.RejectAdmin, "Admin request rejected")
}
