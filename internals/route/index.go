// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "hader_backend/internals/features/lms/attendance/route"
	examRoute "hader_backend/internals/features/lms/exams/route"
	lectureRoute "hader_backend/internals/features/lms/lectures/route"
	rosterRoute "hader_backend/internals/features/lms/roster/route"
	authRoute "hader_backend/internals/features/users/auth/route"
	userRoute "hader_backend/internals/features/users/user/route"
)

// SetupRoutes mendaftarkan semua route aplikasi
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up routes...")

	authRoute.AuthRoutes(app, db)
	userRoute.UserRoutes(app, db)
	rosterRoute.RosterRoutes(app, db)
	examRoute.ExamRoutes(app, db)
	lectureRoute.LectureRoutes(app, db)
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[INFO] All routes registered ✅")
}
