package middleware

import (
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func storeClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("user_id", claims["user_id"])
	c.Locals("email", claims["email"])
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
}

// AuthRequired is a Fiber middleware that rejects requests without a
// valid JWT and stores the identity claims in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth stores identity claims when a valid token is present and
// lets the request through either way. Cart and wishlist routes use it:
// guests identify themselves with an X-Guest-ID header instead.
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if claims, err := authService.ValidateToken(token); err == nil {
				storeClaims(c, claims)
			}
		}
		return c.Next()
	}
}

// AdminRequired enforces role == admin on top of AuthRequired. This is
// the authorization boundary for admin-only writes; the login-surface
// gate in the services package is a UX layer only.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if models.Role(role) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "admin access required",
			})
		}
		return c.Next()
	}
}
