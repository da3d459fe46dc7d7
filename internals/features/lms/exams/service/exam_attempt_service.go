// file: internals/features/lms/exams/service/exam_attempt_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	examModel "hader_backend/internals/features/lms/exams/model"
)

// Toleransi jaringan di atas deadline sebelum submit ditolak.
const LateGrace = 30 * time.Second

var (
	ErrExamNotFound      = errors.New("exam tidak ditemukan")
	ErrAttemptNotStarted = errors.New("attempt belum dimulai")
	ErrDeadlineExceeded  = errors.New("waktu pengerjaan sudah habis")
)

type ExamAttemptService struct {
	DB *gorm.DB
}

func NewExamAttemptService(db *gorm.DB) *ExamAttemptService {
	return &ExamAttemptService{DB: db}
}

/* =========================================================
   START ATTEMPT
========================================================= */

// StartAttempt mencatat started_at untuk pasangan (exam, student).
// Idempotent: start kedua kali mengembalikan attempt yang sudah ada,
// deadline tidak bergeser.
func (s *ExamAttemptService) StartAttempt(
	ctx context.Context,
	examID, studentID uuid.UUID,
) (*examModel.ExamAttemptModel, error) {
	attempt := examModel.ExamAttemptModel{
		ExamID:    examID,
		StudentID: studentID,
		StartedAt: time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&attempt).Error; err != nil {
		return nil, err
	}

	// reload: kalau conflict, baris lama yang berlaku
	var existing examModel.ExamAttemptModel
	if err := s.DB.WithContext(ctx).
		First(&existing, "exam_id = ? AND student_id = ?", examID, studentID).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

/* =========================================================
   SUBMIT
========================================================= */

type SubmitResult struct {
	Score   int
	Replay  bool // true kalau skor diambil dari submission yang sudah ada
}

// Submit menilai jawaban dan menyimpan satu baris submission immutable.
// - deadline = started_at + duration + grace; lewat itu ditolak
// - submit ulang (retry/race) = first write wins, balas skor tersimpan
func (s *ExamAttemptService) Submit(
	ctx context.Context,
	examID, studentID uuid.UUID,
	answers map[uuid.UUID]string,
) (*SubmitResult, error) {
	// 1) Load exam
	var exam examModel.ExamModel
	if err := s.DB.WithContext(ctx).First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	// 2) Attempt harus sudah dimulai — started_at adalah acuan deadline
	var attempt examModel.ExamAttemptModel
	if err := s.DB.WithContext(ctx).
		First(&attempt, "exam_id = ? AND student_id = ?", examID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotStarted
		}
		return nil, err
	}

	// 3) Deadline server-side (countdown client hanya advisory)
	deadline := Deadline(attempt.StartedAt, exam.DurationMinutes)
	if time.Now().UTC().After(deadline.Add(LateGrace)) {
		return nil, ErrDeadlineExceeded
	}

	// 4) Load soal & hitung skor
	var questions []examModel.ExamQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("exam_id = ?", examID).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	score := ComputeScore(questions, answers)

	// 5) Simpan. Unique index (exam_id, student_id) bikin submit ganda
	// konvergen ke satu baris; kalau kalah race, baca skor yang menang.
	rawAnswers, _ := json.Marshal(stringKeyed(answers))
	submission := examModel.ExamSubmissionModel{
		ExamID:    examID,
		StudentID: studentID,
		Score:     score,
		Answers:   datatypes.JSON(rawAnswers),
	}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&submission)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing examModel.ExamSubmissionModel
		if err := s.DB.WithContext(ctx).
			First(&existing, "exam_id = ? AND student_id = ?", examID, studentID).Error; err != nil {
			return nil, err
		}
		log.Printf("[ExamAttemptService] duplicate submit exam_id=%s student_id=%s, balas skor tersimpan", examID, studentID)
		return &SubmitResult{Score: existing.Score, Replay: true}, nil
	}

	return &SubmitResult{Score: score}, nil
}

/* =========================================================
   PURE HELPERS
========================================================= */

// ComputeScore: Σ marks untuk jawaban yang sama persis dengan kunci.
// Soal tanpa jawaban / jawaban salah = 0; tanpa partial credit,
// tanpa nilai minus. Question id yang tidak dikenal diabaikan.
func ComputeScore(questions []examModel.ExamQuestionModel, answers map[uuid.UUID]string) int {
	total := 0
	for _, q := range questions {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		if strings.TrimSpace(ans) == strings.TrimSpace(q.CorrectAnswer) {
			total += q.Marks
		}
	}
	return total
}

// Deadline: batas submit otoritatif di server.
func Deadline(startedAt time.Time, durationMinutes int) time.Time {
	return startedAt.Add(time.Duration(durationMinutes) * time.Minute)
}

// ParseAnswerMap: key string → uuid; key yang bukan uuid dibuang.
func ParseAnswerMap(in map[string]string) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(in))
	for k, v := range in {
		if id, err := uuid.Parse(strings.TrimSpace(k)); err == nil {
			out[id] = v
		}
	}
	return out
}

func stringKeyed(in map[uuid.UUID]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k.String()] = v
	}
	return out
}
