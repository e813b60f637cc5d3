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

// AddressHandler handles a user's address book.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes behind AuthRequired.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleList)
	addressRoutes.Post("/", h.HandleCreate)
	addressRoutes.Put("/:id", h.HandleUpdate)
	addressRoutes.Delete("/:id", h.HandleDelete)
	addressRoutes.Post("/:id/default", h.HandleSetDefault)
}

// HandleList returns the caller's addresses, default first.
func (h *AddressHandler) HandleList(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	addresses, err := h.service.List(userID)
	if err != nil {
		log.Printf("Error listing addresses for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
		})
	}
	return c.JSON(fiber.Map{"addresses": addresses})
}

// HandleCreate saves a new address for the caller.
func (h *AddressHandler) HandleCreate(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.Create(userID, &address); err != nil {
		log.Printf("Error creating address for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save address",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleUpdate edits one of the caller's addresses.
func (h *AddressHandler) HandleUpdate(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = c.Params("id")
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.Update(userID, &address); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		log.Printf("Error updating address %s: %v", address.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update address",
		})
	}
	return c.JSON(address)
}

// HandleDelete removes one of the caller's addresses.
func (h *AddressHandler) HandleDelete(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	addressID := c.Params("id")

	if err := h.service.Delete(userID, addressID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		log.Printf("Error deleting address %s: %v", addressID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete address",
		})
	}
	return c.JSON(fiber.Map{"message": "Address deleted"})
}

// HandleSetDefault promotes one address to the caller's default.
func (h *AddressHandler) HandleSetDefault(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	addressID := c.Params("id")

	if err := h.service.SetDefault(userID, addressID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		log.Printf("Error setting default address %s: %v", addressID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not set default address",
		})
	}
	return c.JSON(fiber.Map{"message": "Default address updated"})
}
