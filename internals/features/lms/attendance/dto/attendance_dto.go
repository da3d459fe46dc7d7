// file: internals/features/lms/attendance/dto/attendance_dto.go
package dto

import "github.com/google/uuid"

type ToggleAttendanceRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	LectureID uuid.UUID `json:"lectureId" validate:"required"`
	Attended  bool      `json:"attended"`
}

// Satu baris rekap kehadiran (JOIN users + lectures)
type AttendanceRow struct {
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	LectureID   uuid.UUID `json:"lecture_id"`
	LectureName string    `json:"lecture_name"`
	LectureDay  string    `json:"lecture_day"`
}
