// file: internals/features/lms/roster/service/roster_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	rosterModel "hader_backend/internals/features/lms/roster/model"
	userModel "hader_backend/internals/features/users/user/model"
)

const (
	EdgeKindStudent   = "student"
	EdgeKindAssistant = "assistant"
)

var ErrUnknownEdgeKind = errors.New("type harus 'student' atau 'assistant'")

// GormEdges: implementasi EdgeChecker untuk ExamPolicy.
type GormEdges struct {
	DB *gorm.DB
}

func NewGormEdges(db *gorm.DB) *GormEdges {
	return &GormEdges{DB: db}
}

func (g *GormEdges) HasAssistantEdge(ctx context.Context, teacherID, assistantID uuid.UUID) (bool, error) {
	var n int64
	err := g.DB.WithContext(ctx).
		Model(&rosterModel.TeacherAssistantModel{}).
		Where("teacher_id = ? AND assistant_id = ?", teacherID, assistantID).
		Count(&n).Error
	return n > 0, err
}

func (g *GormEdges) HasStudentEdge(ctx context.Context, teacherID, studentID uuid.UUID) (bool, error) {
	var n int64
	err := g.DB.WithContext(ctx).
		Model(&rosterModel.TeacherStudentModel{}).
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		Count(&n).Error
	return n > 0, err
}

// AddEdge: hanya teacher pemilik edge yang boleh manggil (dicek di controller).
// Duplicate add = no-op lewat ON CONFLICT DO NOTHING.
func AddEdge(ctx context.Context, db *gorm.DB, teacherID, userID uuid.UUID, kind string) error {
	switch kind {
	case EdgeKindStudent:
		return db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rosterModel.TeacherStudentModel{TeacherID: teacherID, StudentID: userID}).Error
	case EdgeKindAssistant:
		return db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rosterModel.TeacherAssistantModel{TeacherID: teacherID, AssistantID: userID}).Error
	default:
		return ErrUnknownEdgeKind
	}
}

// RemoveEdge: idempotent — hapus edge yang tidak ada bukan error.
func RemoveEdge(ctx context.Context, db *gorm.DB, teacherID, userID uuid.UUID, kind string) error {
	switch kind {
	case EdgeKindStudent:
		return db.WithContext(ctx).
			Where("teacher_id = ? AND student_id = ?", teacherID, userID).
			Delete(&rosterModel.TeacherStudentModel{}).Error
	case EdgeKindAssistant:
		return db.WithContext(ctx).
			Where("teacher_id = ? AND assistant_id = ?", teacherID, userID).
			Delete(&rosterModel.TeacherAssistantModel{}).Error
	default:
		return ErrUnknownEdgeKind
	}
}

// StudentsOfTeacher: semua student yang terhubung langsung ke teacher.
func StudentsOfTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]userModel.UserModel, error) {
	var rows []userModel.UserModel
	err := db.WithContext(ctx).
		Joins("INNER JOIN teacher_students ts ON users.id = ts.student_id").
		Where("ts.teacher_id = ?", teacherID).
		Find(&rows).Error
	return rows, err
}

// AssistantsOfTeacher: semua assistant yang terhubung langsung ke teacher.
func AssistantsOfTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]userModel.UserModel, error) {
	var rows []userModel.UserModel
	err := db.WithContext(ctx).
		Joins("INNER JOIN teacher_assistants ta ON users.id = ta.assistant_id").
		Where("ta.teacher_id = ?", teacherID).
		Find(&rows).Error
	return rows, err
}

// StudentsVisibleToAssistant: visibility assistant diturunkan transitif
// lewat teacher-nya (two-hop join), bukan dikonfigurasi langsung.
func StudentsVisibleToAssistant(ctx context.Context, db *gorm.DB, assistantID uuid.UUID) ([]userModel.UserModel, error) {
	var rows []userModel.UserModel
	err := db.WithContext(ctx).
		Distinct("users.*").
		Joins("INNER JOIN teacher_students ts ON users.id = ts.student_id").
		Joins("INNER JOIN teacher_assistants ta ON ts.teacher_id = ta.teacher_id").
		Where("ta.assistant_id = ?", assistantID).
		Find(&rows).Error
	return rows, err
}
