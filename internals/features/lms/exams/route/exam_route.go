// file: internals/features/lms/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	examController "hader_backend/internals/features/lms/exams/controller"
	authMiddleware "hader_backend/internals/middlewares/auth"
)

// ExamRoutes — semua endpoint exam butuh login.
// Gate role kasar di sini, kepemilikan dicek di controller (policy).
func ExamRoutes(app *fiber.App, db *gorm.DB) {
	ctl := examController.NewExamController(db)

	exams := app.Group("/api/exams", authMiddleware.AuthMiddleware(db))

	// 🔍 Baca: semua role, hasil difilter per role di controller
	exams.Get("/", ctl.List)
	exams.Get("/:id", ctl.Detail)
	exams.Get("/:id/questions", ctl.Questions)
	exams.Get("/:id/submissions", ctl.Submissions)

	// ✏️ Tulis exam: staff (admin, teacher, assistant)
	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("mengelola exam"),
		constants.StaffRoles...,
	)
	exams.Post("/", staffOnly, ctl.Create)
	exams.Put("/", staffOnly, ctl.Update)
	exams.Post("/:id/questions", staffOnly, ctl.CreateQuestion)
	exams.Delete("/:id/questions/:qid", staffOnly, ctl.DeleteQuestion)

	// 🗑️ Hapus exam: admin & teacher saja (assistant tidak boleh)
	exams.Delete("/", authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("menghapus exam"),
		constants.TeacherAndAbove...,
	), ctl.Delete)

	// 🎓 Attempt: student saja
	studentOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("mengerjakan exam"),
		constants.StudentOnly...,
	)
	exams.Post("/:id/start", studentOnly, ctl.StartAttempt)
	exams.Post("/:id/submit", studentOnly, ctl.SubmitAttempt)
}
