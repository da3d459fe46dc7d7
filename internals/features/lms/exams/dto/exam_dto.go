package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	examModel "hader_backend/internals/features/lms/exams/model"
)

// ========================== REQUEST ==========================

type CreateExamRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=180"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	TotalMarks  int    `json:"total_marks" validate:"required,gt=0"`
}

type UpdateExamRequest struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3,max=180"`
	Description string    `json:"description"`
	Duration    int       `json:"duration" validate:"required,gt=0"`
	TotalMarks  int       `json:"total_marks" validate:"required,gt=0"`
}

type CreateQuestionRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Marks         int      `json:"marks" validate:"required,gt=0"`
}

// SubmitExamRequest: key = question id (string), value = opsi yang dipilih.
// Key yang bukan uuid atau bukan soal exam ini diabaikan saat scoring.
type SubmitExamRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// ========================== RESPONSE ==========================

type ExamResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	TotalMarks  int       `json:"total_marks"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	TeacherName string    `json:"teacher_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionResponse: correct_answer DIBUANG untuk role student
// (redaction kontrak data, bukan urusan UI).
type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	ExamID        uuid.UUID `json:"exam_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer *string   `json:"correct_answer,omitempty"`
	Marks         int       `json:"marks"`
}

type StartAttemptResponse struct {
	Exam      ExamResponse       `json:"exam"`
	Questions []QuestionResponse `json:"questions"`
	StartedAt time.Time          `json:"started_at"`
	Deadline  time.Time          `json:"deadline"`
}

type SubmissionResponse struct {
	ExamID      uuid.UUID `json:"exam_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ========================== MAPPER ==========================

func FromModelExam(m *examModel.ExamModel, teacherName string) ExamResponse {
	return ExamResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.DurationMinutes,
		TotalMarks:  m.TotalMarks,
		TeacherID:   m.TeacherID,
		TeacherName: teacherName,
		CreatedAt:   m.CreatedAt,
	}
}

// FromModelQuestion: redact=true → correct_answer nil (tidak pernah
// sampai ke student dalam bentuk apa pun).
func FromModelQuestion(m *examModel.ExamQuestionModel, redact bool) QuestionResponse {
	var options []string
	if len(m.Options) > 0 {
		_ = json.Unmarshal(m.Options, &options)
	}
	out := QuestionResponse{
		ID:       m.ID,
		ExamID:   m.ExamID,
		Question: m.Question,
		Options:  options,
		Marks:    m.Marks,
	}
	if !redact {
		correct := m.CorrectAnswer
		out.CorrectAnswer = &correct
	}
	return out
}

func FromModelQuestions(rows []examModel.ExamQuestionModel, redact bool) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelQuestion(&rows[i], redact))
	}
	return out
}
