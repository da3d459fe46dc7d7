package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	userController "hader_backend/internals/features/users/user/controller"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	teacherCtrl := userController.NewTeacherAdminController(db)

	// /api/users — list/hapus khusus admin, create boleh admin & teacher
	users := app.Group("/api/users", authMiddleware.AuthMiddleware(db))
	users.Get("/",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("daftar user"), constants.AdminOnly...),
		userCtrl.List)
	users.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("buat user"), constants.TeacherAndAbove...),
		userCtrl.Create)
	users.Delete("/",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("hapus user"), constants.AdminOnly...),
		userCtrl.Delete)

	// /api/admin/teachers — semua khusus admin
	teachers := app.Group("/api/admin/teachers",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen teacher"), constants.AdminOnly...),
	)
	teachers.Get("/", teacherCtrl.List)
	teachers.Post("/", teacherCtrl.Create)
	teachers.Put("/", teacherCtrl.Update)
	teachers.Delete("/", teacherCtrl.Delete)
}
