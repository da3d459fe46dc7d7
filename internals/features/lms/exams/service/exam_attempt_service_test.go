package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	examModel "hader_backend/internals/features/lms/exams/model"
)

func question(id uuid.UUID, correct string, marks int) examModel.ExamQuestionModel {
	return examModel.ExamQuestionModel{
		ID:            id,
		CorrectAnswer: correct,
		Marks:         marks,
	}
}

func TestComputeScore(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	questions := []examModel.ExamQuestionModel{
		question(q1, "B", 5),
		question(q2, "C", 10),
	}

	cases := []struct {
		name    string
		answers map[uuid.UUID]string
		want    int
	}{
		{
			"satu benar satu salah",
			map[uuid.UUID]string{q1: "B", q2: "X"},
			5,
		},
		{
			"semua benar",
			map[uuid.UUID]string{q1: "B", q2: "C"},
			15,
		},
		{
			"semua salah",
			map[uuid.UUID]string{q1: "A", q2: "A"},
			0,
		},
		{
			"jawaban kosong",
			map[uuid.UUID]string{},
			0,
		},
		{
			"soal tak dijawab dilewati",
			map[uuid.UUID]string{q2: "C"},
			10,
		},
		{
			"question id asing diabaikan",
			map[uuid.UUID]string{uuid.New(): "B", q1: "B"},
			5,
		},
		{
			"whitespace tidak menggagalkan kecocokan",
			map[uuid.UUID]string{q1: " B ", q2: "C\n"},
			15,
		},
		{
			"case sensitive",
			map[uuid.UUID]string{q1: "b"},
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeScore(questions, tc.answers); got != tc.want {
				t.Errorf("ComputeScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeScoreNoQuestions(t *testing.T) {
	if got := ComputeScore(nil, map[uuid.UUID]string{uuid.New(): "A"}); got != 0 {
		t.Errorf("ComputeScore = %d, want 0", got)
	}
}

func TestDeadline(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	got := Deadline(start, 90)
	want := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Deadline = %s, want %s", got, want)
	}
}

func TestParseAnswerMap(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()

	in := map[string]string{
		q1.String():         "B",
		" " + q2.String():   "C", // whitespace di key masih diterima
		"bukan-uuid":        "A",
		"":                  "A",
		"123":               "D",
	}
	out := ParseAnswerMap(in)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (key non-uuid harus dibuang)", len(out))
	}
	if out[q1] != "B" {
		t.Errorf("out[q1] = %q, want B", out[q1])
	}
	if out[q2] != "C" {
		t.Errorf("out[q2] = %q, want C", out[q2])
	}
}

func TestStringKeyedRoundTrip(t *testing.T) {
	q := uuid.New()
	in := map[uuid.UUID]string{q: "B"}

	back := ParseAnswerMap(stringKeyed(in))
	if back[q] != "B" {
		t.Errorf("round trip lost answer: %v", back)
	}
}
