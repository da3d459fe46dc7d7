package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hader_backend/internals/features/users/auth/controller"
	"hader_backend/internals/middlewares"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/check", ctrl.Check) // tanpa middleware, lihat service.Check
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
