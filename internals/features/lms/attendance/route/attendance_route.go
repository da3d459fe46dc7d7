// file: internals/features/lms/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	attendanceController "hader_backend/internals/features/lms/attendance/controller"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	// ✅ Absensi dipegang admin & teacher
	attendance := app.Group("/api/attendance",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("absensi"),
			constants.TeacherAndAbove...,
		),
	)

	attendance.Get("/", ctl.List)
	attendance.Post("/", ctl.Toggle)
}
