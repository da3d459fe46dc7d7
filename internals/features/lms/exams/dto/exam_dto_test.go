package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	examModel "hader_backend/internals/features/lms/exams/model"
)

func sampleQuestion(t *testing.T) examModel.ExamQuestionModel {
	t.Helper()
	raw, err := json.Marshal([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("marshal options: %v", err)
	}
	return examModel.ExamQuestionModel{
		ID:            uuid.New(),
		ExamID:        uuid.New(),
		Question:      "Huruf kedua alfabet?",
		Options:       datatypes.JSON(raw),
		CorrectAnswer: "B",
		Marks:         5,
	}
}

func TestFromModelQuestionRedacted(t *testing.T) {
	m := sampleQuestion(t)

	got := FromModelQuestion(&m, true)
	if got.CorrectAnswer != nil {
		t.Fatalf("correct_answer harus nil saat redacted, got %q", *got.CorrectAnswer)
	}
	if len(got.Options) != 4 {
		t.Errorf("options = %v, want 4 entri", got.Options)
	}
	if got.Marks != 5 {
		t.Errorf("marks = %d, want 5", got.Marks)
	}

	// kunci jawaban tidak boleh muncul di JSON final sama sekali
	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	if strings.Contains(string(body), "correct_answer") {
		t.Errorf("payload redacted masih memuat field correct_answer: %s", body)
	}
}

func TestFromModelQuestionUnredacted(t *testing.T) {
	m := sampleQuestion(t)

	got := FromModelQuestion(&m, false)
	if got.CorrectAnswer == nil {
		t.Fatal("correct_answer hilang untuk pembaca staff")
	}
	if *got.CorrectAnswer != "B" {
		t.Errorf("correct_answer = %q, want B", *got.CorrectAnswer)
	}
}

func TestFromModelQuestionsRedactsEveryRow(t *testing.T) {
	rows := []examModel.ExamQuestionModel{
		sampleQuestion(t),
		sampleQuestion(t),
		sampleQuestion(t),
	}

	for i, q := range FromModelQuestions(rows, true) {
		if q.CorrectAnswer != nil {
			t.Errorf("row %d: correct_answer bocor", i)
		}
	}

	for i, q := range FromModelQuestions(rows, false) {
		if q.CorrectAnswer == nil {
			t.Errorf("row %d: correct_answer hilang", i)
		}
	}
}

func TestFromModelExam(t *testing.T) {
	m := examModel.ExamModel{
		ID:              uuid.New(),
		Title:           "UTS Fiqih",
		Description:     "Bab 1-4",
		DurationMinutes: 90,
		TotalMarks:      100,
		TeacherID:       uuid.New(),
	}

	got := FromModelExam(&m, "Ustadz Ahmad")
	if got.Duration != 90 {
		t.Errorf("duration = %d, want 90", got.Duration)
	}
	if got.TeacherName != "Ustadz Ahmad" {
		t.Errorf("teacher_name = %q", got.TeacherName)
	}
	if got.TeacherID != m.TeacherID {
		t.Errorf("teacher_id = %s, want %s", got.TeacherID, m.TeacherID)
	}
}
