package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamModel merepresentasikan tabel exams. Satu exam dimiliki tepat
// satu teacher (pembuatnya).
type ExamModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string    `gorm:"size:180;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"column:duration;not null" json:"duration"`
	TotalMarks      int       `gorm:"column:total_marks;not null" json:"total_marks"`
	TeacherID       uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}
