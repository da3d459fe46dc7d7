// file: internals/features/lms/lectures/route/lecture_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	lectureController "hader_backend/internals/features/lms/lectures/controller"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

func LectureRoutes(app *fiber.App, db *gorm.DB) {
	ctl := lectureController.NewLectureController(db)

	lectures := app.Group("/api/lectures", authMiddleware.AuthMiddleware(db))

	// 🔍 Jadwal bisa dilihat semua role
	lectures.Get("/", ctl.List)

	// ✏️ Kelola jadwal: admin & teacher
	manage := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("mengelola jadwal"),
		constants.TeacherAndAbove...,
	)
	lectures.Post("/", manage, ctl.Create)
	lectures.Put("/", manage, ctl.Update)
	lectures.Delete("/", manage, ctl.Delete)
}
