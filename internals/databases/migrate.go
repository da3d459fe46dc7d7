// file: internals/databases/migrate.go
package database

import (
	"log"

	attendanceModel "hader_backend/internals/features/lms/attendance/model"
	examModel "hader_backend/internals/features/lms/exams/model"
	lectureModel "hader_backend/internals/features/lms/lectures/model"
	rosterModel "hader_backend/internals/features/lms/roster/model"
	authModel "hader_backend/internals/features/users/auth/model"
	userModel "hader_backend/internals/features/users/user/model"
)

// MigrateAll sinkronkan skema. Urutan penting: users dulu,
// tabel lain mereferensikan id user.
func MigrateAll() {
	log.Println("[INFO] Running migrations...")

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&rosterModel.TeacherStudentModel{},
		&rosterModel.TeacherAssistantModel{},
		&lectureModel.LectureModel{},
		&attendanceModel.AttendanceModel{},
		&examModel.ExamModel{},
		&examModel.ExamQuestionModel{},
		&examModel.ExamAttemptModel{},
		&examModel.ExamSubmissionModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration gagal: %v", err)
	}

	log.Println("✅ Migration selesai.")
}
