package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	rosterController "hader_backend/internals/features/lms/roster/controller"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

func RosterRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := rosterController.NewRosterController(db)

	tm := app.Group("/api/teacher-management", authMiddleware.AuthMiddleware(db))
	tm.Get("/", ctrl.Overview) // role dicek di controller (teacher/assistant)
	tm.Post("/",
		authMiddleware.OnlyRoles("Hanya teacher yang boleh mengubah roster", constants.TeacherOnly...),
		ctrl.Manage)
}
