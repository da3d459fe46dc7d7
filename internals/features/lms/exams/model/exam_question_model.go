// file: internals/features/lms/exams/model/exam_question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExamQuestionModel: soal pilihan ganda. Options disimpan sebagai JSON
// array of string (urutan dipertahankan); CorrectAnswer harus salah
// satu isi Options.
type ExamQuestionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExamID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"exam_id"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `gorm:"not null" json:"options"`
	CorrectAnswer string         `gorm:"column:correct_answer;not null" json:"correct_answer"`
	Marks         int            `gorm:"not null;default:1" json:"marks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ExamQuestionModel) TableName() string {
	return "exam_questions"
}

// ------------------------
// Helpers
// ------------------------

// SetOptions → simpan daftar opsi + jawaban benar, sekaligus jaga
// invariant correct ∈ options.
func (m *ExamQuestionModel) SetOptions(options []string, correct string) error {
	if len(options) < 2 {
		return errors.New("minimal 2 opsi diperlukan")
	}
	correct = strings.TrimSpace(correct)
	if correct == "" {
		return errors.New("correct_answer wajib diisi")
	}
	found := false
	for _, op := range options {
		if strings.TrimSpace(op) == "" {
			return errors.New("option text tidak boleh kosong")
		}
		if op == correct {
			found = true
		}
	}
	if !found {
		return errors.New("correct_answer harus salah satu dari options")
	}
	b, _ := json.Marshal(options)
	m.Options = datatypes.JSON(b)
	m.CorrectAnswer = correct
	return nil
}

// OptionList decode kolom JSON jadi []string.
func (m *ExamQuestionModel) OptionList() ([]string, error) {
	var out []string
	if len(m.Options) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(m.Options, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateShape → mirror CHECK constraint di DB biar cepat fail di app.
func (m *ExamQuestionModel) ValidateShape() error {
	if strings.TrimSpace(m.Question) == "" {
		return errors.New("question wajib diisi")
	}
	if m.Marks <= 0 {
		return errors.New("marks harus > 0")
	}
	opts, err := m.OptionList()
	if err != nil {
		return errors.New("options bukan JSON array of string yang valid")
	}
	if len(opts) < 2 {
		return errors.New("minimal 2 opsi diperlukan")
	}
	for _, op := range opts {
		if op == m.CorrectAnswer {
			return nil
		}
	}
	return errors.New("correct_answer harus salah satu dari options")
}
