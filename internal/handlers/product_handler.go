package handlers

import (
	"errors"
	"log"

	"storefront/internal/currency"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the public catalog and the admin product CRUD.
type ProductHandler struct {
	catalog  *services.CatalogService
	reviews  *services.ReviewService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService, reviews *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		reviews:  reviews,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
}

// RegisterAdminRoutes registers the admin-only product CRUD.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

type productResponse struct {
	models.Product
	DisplayPrice string `json:"display_price"`
}

func withDisplayPrices(products []models.Product, code currency.Code) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{Product: p, DisplayPrice: currency.Format(p.Price, code)})
	}
	return out
}

// HandleList returns the full catalog. Filtering, sorting and paging
// happen client-side over this set. ?refresh=true bypasses the cache;
// when the refresh fails but a cached list exists, the stale list is
// returned together with the error string.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	code := currency.Normalize(c.Query("currency"))

	if c.QueryBool("refresh") {
		products, err := h.catalog.Refresh(c.Context())
		if err != nil {
			log.Printf("Catalog refresh failed: %v", err)
			if products == nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Could not retrieve products",
				})
			}
			return c.JSON(fiber.Map{
				"products": withDisplayPrices(products, code),
				"error":    "refresh failed, showing previously loaded products",
			})
		}
		return c.JSON(fiber.Map{"products": withDisplayPrices(products, code)})
	}

	products, err := h.catalog.List(c.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(fiber.Map{"products": withDisplayPrices(products, code)})
}

// HandleGetByID returns one product with its review aggregate.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	code := currency.Normalize(c.Query("currency"))

	product, err := h.catalog.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}

	summary, err := h.reviews.SummaryForProduct(productID)
	if err != nil {
		// The product page still renders without its rating aggregate.
		log.Printf("Error summarizing reviews for product %s: %v", productID, err)
	}

	return c.JSON(fiber.Map{
		"product": productResponse{Product: *product, DisplayPrice: currency.Format(product.Price, code)},
		"rating":  summary,
	})
}

// HandleCreate creates a product. Admin only.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.catalog.Create(c.Context(), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate updates a product. Admin only.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.catalog.Update(c.Context(), &product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
		})
	}
	return c.JSON(product)
}

// HandleDelete deletes a product. Admin only.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.catalog.Delete(c.Context(), productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
