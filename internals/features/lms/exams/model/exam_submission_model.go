package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExamSubmissionModel: hasil akhir satu attempt. Immutable setelah
// insert — tidak ada path amend/resubmit. Skor selalu hasil hitungan
// server, jangan pernah terima skor dari client.
// Unik per (exam, student): submit ulang tidak bikin baris kedua.
type ExamSubmissionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExamID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_exam_submissions_pair" json:"exam_id"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_exam_submissions_pair" json:"student_id"`
	Score     int            `gorm:"not null" json:"score"`
	Answers   datatypes.JSON `json:"answers"` // raw answer map untuk audit

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (ExamSubmissionModel) TableName() string {
	return "exam_submissions"
}
