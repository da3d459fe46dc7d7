// file: internals/helpers/auth/exam_policy.go
package helper

import (
	"context"

	"github.com/google/uuid"

	"hader_backend/internals/constants"
)

// ExamRef: potongan exam yang dibutuhkan policy (cukup id + pemilik).
type ExamRef struct {
	ID        uuid.UUID
	TeacherID uuid.UUID
}

// EdgeChecker melihat relasi delegasi teacher→assistant / teacher→student.
// Implementasi GORM-nya ada di fitur roster; di test cukup fake in-memory.
type EdgeChecker interface {
	HasAssistantEdge(ctx context.Context, teacherID, assistantID uuid.UUID) (bool, error)
	HasStudentEdge(ctx context.Context, teacherID, studentID uuid.UUID) (bool, error)
}

// ExamPolicy adalah satu-satunya tempat matriks empat role diputuskan.
// Jangan tulis ulang cek role di controller.
type ExamPolicy struct {
	Edges EdgeChecker
}

func NewExamPolicy(edges EdgeChecker) *ExamPolicy {
	return &ExamPolicy{Edges: edges}
}

// CanRead: admin selalu; teacher kalau pemilik; assistant/student kalau
// punya edge delegasi ke teacher pemilik. Role tak dikenal = tolak.
func (p *ExamPolicy) CanRead(ctx context.Context, actor Identity, exam ExamRef) (bool, error) {
	switch actor.Role {
	case constants.RoleAdmin:
		return true, nil
	case constants.RoleTeacher:
		return exam.TeacherID == actor.ID, nil
	case constants.RoleAssistant:
		return p.Edges.HasAssistantEdge(ctx, exam.TeacherID, actor.ID)
	case constants.RoleStudent:
		return p.Edges.HasStudentEdge(ctx, exam.TeacherID, actor.ID)
	default:
		return false, nil
	}
}

// CanWrite: create/update. Staff saja; non-admin wajib pemilik.
func (p *ExamPolicy) CanWrite(actor Identity, exam ExamRef) bool {
	switch actor.Role {
	case constants.RoleAdmin:
		return true
	case constants.RoleTeacher, constants.RoleAssistant:
		return exam.TeacherID == actor.ID
	default:
		return false
	}
}

// CanDelete: lebih ketat dari CanWrite — assistant tidak boleh hapus.
func (p *ExamPolicy) CanDelete(actor Identity, exam ExamRef) bool {
	switch actor.Role {
	case constants.RoleAdmin:
		return true
	case constants.RoleTeacher:
		return exam.TeacherID == actor.ID
	default:
		return false
	}
}
