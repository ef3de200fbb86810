package middleware

import (
	"strings"

	"extremefit-api/internal/repository"
	"extremefit-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireUser validates the storefront bearer token issued by the identity
// provider and resolves its subject to a local users row, attached to the
// request as "user".
func RequireUser(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization token"})
		}

		clerkID, err := jwt.ValidateSessionToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByClerkID(clerkID)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found in database"})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID.String())
		return c.Next()
	}
}

// RequireAdmin validates a backoffice session token and checks the admin
// flag plus the per-user token version (single active session).
func RequireAdmin(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "User not found"})
		}

		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Session expired (logged in on another device)"})
		}

		if !user.IsAdmin {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Forbidden: admin access required"})
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID.String())
		return c.Next()
	}
}
