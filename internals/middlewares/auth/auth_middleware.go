// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "hader_backend/internals/features/users/auth/model"
	authService "hader_backend/internals/features/users/auth/service"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

// AuthMiddleware memverifikasi bearer token (atau cookie), cek blacklist,
// lalu simpan identitas ke Locals. Controller tinggal ambil lewat GetIdentity.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			err := db.Where("token = ?", tokenString).First(&existing).Error
			if err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Verifikasi signature + expiry. Semua kegagalan = invalid, tanpa
		// bedain malformed/expired/bad-signature ke caller.
		identity, ok := authService.VerifyToken(tokenString)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		// 4) Simpan identitas + raw token ke Locals
		helperAuth.StoreIdentity(c, *identity)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
