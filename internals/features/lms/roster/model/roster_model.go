package model

import (
	"time"

	"github.com/google/uuid"
)

// Edge delegasi teacher→student. Unik per pasangan: add dua kali = no-op.
type TeacherStudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_students_pair" json:"teacher_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_students_pair" json:"student_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeacherStudentModel) TableName() string {
	return "teacher_students"
}

// Edge delegasi teacher→assistant.
type TeacherAssistantModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_assistants_pair" json:"teacher_id"`
	AssistantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_assistants_pair" json:"assistant_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeacherAssistantModel) TableName() string {
	return "teacher_assistants"
}
