package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/services"
)

func envelope(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success":   false,
		"error":     label,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Authenticate requires a valid admin bearer token and stores the claims
// in Locals("claims").
func Authenticate(c *fiber.Ctx) error {
	authz := c.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return envelope(c, fiber.StatusUnauthorized, "Unauthorized", "Access token is required")
	}
	claims, err := services.ParseAdminToken(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return envelope(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
	}
	c.Locals("claims", claims)
	return c.Next()
}

// RequireRoles gates a route on the authenticated admin's role. Must run
// after Authenticate.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals("claims").(*services.AdminClaims)
		if claims == nil {
			return envelope(c, fiber.StatusUnauthorized, "Unauthorized", "Access token is required")
		}
		for _, r := range roles {
			if r == claims.Role {
				return c.Next()
			}
		}
		return envelope(c, fiber.StatusForbidden, "Forbidden", "Insufficient role")
	}
}

// Actor returns the authenticated admin username, or "" for anonymous
// contexts (the registry falls back to "system").
func Actor(c *fiber.Ctx) string {
	if claims, ok := c.Locals("claims").(*services.AdminClaims); ok {
		return claims.Username
	}
	return ""
}
