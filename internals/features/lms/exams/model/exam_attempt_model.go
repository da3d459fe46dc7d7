package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamAttemptModel mencatat kapan student mulai mengerjakan exam.
// started_at jadi acuan deadline server-side saat submit; satu attempt
// per pasangan (exam, student).
type ExamAttemptModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExamID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_attempts_pair" json:"exam_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_attempts_pair" json:"student_id"`
	StartedAt time.Time `gorm:"autoCreateTime" json:"started_at"`
}

func (ExamAttemptModel) TableName() string {
	return "exam_attempts"
}
