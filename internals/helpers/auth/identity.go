// file: internals/helpers/auth/identity.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys di Locals (HARUS seragam dengan middleware auth)
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "userRole"
)

// Identity adalah klaim identitas hasil verifikasi JWT.
// Business logic menerima Identity sebagai parameter eksplisit,
// tidak boleh baca Locals sendiri.
type Identity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// StoreIdentity dipanggil middleware auth setelah token valid.
func StoreIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(LocUserID, id.ID.String())
	c.Locals(LocUserName, id.Name)
	c.Locals(LocUserRole, id.Role)
}

// GetIdentity membaca identitas dari Locals. 401 kalau tidak ada / rusak.
func GetIdentity(c *fiber.Ctx) (Identity, error) {
	idStr, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(idStr) == "" {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing identity")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(role) == "" {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role information")
	}
	name, _ := c.Locals(LocUserName).(string)
	return Identity{ID: id, Name: name, Role: role}, nil
}
