package handlers

import (
	"fmt"
	"log"
	"strings"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, the two login surfaces and the
// profile endpoints.
type AuthHandler struct {
	authService     *services.AuthService
	cartService     *services.CartService
	wishlistService *services.WishlistService
	validate        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cartService *services.CartService, wishlistService *services.WishlistService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		cartService:     cartService,
		wishlistService: wishlistService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/admin/register", h.HandleAdminRegister)
	authRoutes.Post("/admin/login", h.HandleAdminLogin)
}

// RegisterProtectedRoutes registers the routes that need a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Get("/me", h.HandleMe)
	authRoutes.Put("/profile", h.HandleUpdateProfile)
}

func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

func (h *AuthHandler) handleRegister(c *fiber.Ctx, requestAdmin bool) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.authService.Register(req, requestAdmin)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// HandleRegister handles customer signup; accounts start as plain users.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	return h.handleRegister(c, false)
}

// HandleAdminRegister handles signup through the admin console;
// accounts start as pending_admin and must be approved.
func (h *AuthHandler) HandleAdminRegister(c *fiber.Ctx) error {
	return h.handleRegister(c, true)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) handleLogin(c *fiber.Ctx, surface services.Surface) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	decision := services.DecideGate(user.Role, surface)
	switch decision.Action {
	case services.GateDenyLogout:
		// No token is issued; the client shows the message for the
		// grace period (if any) and returns to the login screen.
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message":              decision.Message,
			"logged_out":           true,
			"logout_delay_seconds": int(decision.LogoutDelay.Seconds()),
		})
	case services.GateDenyRedirect:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message":  decision.Message,
			"redirect": "/",
		})
	}

	// Login succeeded: any guest cart/wishlist from before is discarded.
	// The user's stored lists are authoritative from here on.
	if guestID := c.Get("X-Guest-ID"); guestID != "" {
		h.cartService.EndGuestSession(c.Context(), guestID)
		h.wishlistService.EndGuestSession(c.Context(), guestID)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// HandleLogin handles login through the customer surface.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	return h.handleLogin(c, services.SurfaceCustomer)
}

// HandleAdminLogin handles login through the admin surface.
func (h *AuthHandler) HandleAdminLogin(c *fiber.Ctx) error {
	return h.handleLogin(c, services.SurfaceAdmin)
}

// HandleMe resolves and returns the caller's profile.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	email, _ := c.Locals("email").(string)

	user, outcome := h.authService.ResolveProfile(userID, email)
	return c.JSON(fiber.Map{
		"user":         user,
		"display_name": user.DisplayName(),
		"resolution":   outcome.String(),
	})
}

// HandleUpdateProfile updates the caller's name fields.
func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req struct {
		FirstName string `json:"first_name" validate:"omitempty,max=100"`
		LastName  string `json:"last_name" validate:"omitempty,max=100"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	user, err := h.authService.UpdateProfile(userID, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("Error updating profile for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}
