package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "hader_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Catatan: insufficient role dibalas 401 (bukan 403), konsisten
// dengan kontrak API lama.
func RoleMiddlewareWithCustomError(allowedRoles []string, customMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helperAuth.LocUserRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customMessage == "" {
			customMessage = "Unauthorized: you are not allowed to access this resource"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": customMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
