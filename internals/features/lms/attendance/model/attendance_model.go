// file: internals/features/lms/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Ledger kehadiran: satu baris = satu pasangan (user, lecture) yang hadir.
// Tidak hadir = tidak ada baris, jadi toggle false cukup hapus barisnya.
type AttendanceModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_pair" json:"user_id"`
	LectureID uuid.UUID `gorm:"column:lecture_id;type:uuid;not null;uniqueIndex:uq_attendance_pair" json:"lecture_id"`
	Attended  bool      `gorm:"column:attended;not null;default:true" json:"attended"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
