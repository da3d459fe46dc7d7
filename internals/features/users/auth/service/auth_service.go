// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "hader_backend/internals/features/users/auth/model"
	userModel "hader_backend/internals/features/users/user/model"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

// ========================== LOGIN ==========================
// POST /api/auth/login {id, password}
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if input.ID == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id dan password wajib diisi")
	}

	// id salah format diperlakukan sama dengan kredensial salah,
	// jangan kasih bocoran mana yang keliru.
	userID, err := uuid.Parse(input.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Println("[ERROR] Login query:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication failed")
	}

	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	identity := helperAuth.Identity{ID: user.ID, Name: user.Name, Role: user.Role}
	token, err := IssueToken(identity)
	if err != nil {
		log.Println("[ERROR] IssueToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication failed")
	}

	// Mirror token ke cookie http-only untuk navigasi halaman
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   int(TokenTTL / time.Second),
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"user":  identity,
	})
}

// ========================== CHECK ==========================
// GET /api/auth/check — dipanggil frontend middleware tiap navigasi,
// sengaja tanpa auth middleware supaya shape response-nya tetap
// {authenticated: false} saat token tidak valid.
func Check(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	identity, ok := VerifyToken(raw)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          identity,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout — masukkan token ke blacklist + hapus cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: TokenExpiry(raw),
	}
	// Token yang sama di-logout dua kali = idempotent
	if err := db.WithContext(c.Context()).Create(&entry).Error; err != nil &&
		!errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Println("[ERROR] Logout blacklist insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessCookieName,
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   -1,
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}
