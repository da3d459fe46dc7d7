package helper

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"hader_backend/internals/constants"
)

type edgeKey struct{ teacher, other uuid.UUID }

// fakeEdges: graf delegasi in-memory
type fakeEdges struct {
	assistants map[edgeKey]bool
	students   map[edgeKey]bool
	err        error
}

func newFakeEdges() *fakeEdges {
	return &fakeEdges{
		assistants: map[edgeKey]bool{},
		students:   map[edgeKey]bool{},
	}
}

func (f *fakeEdges) HasAssistantEdge(_ context.Context, teacherID, assistantID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.assistants[edgeKey{teacherID, assistantID}], nil
}

func (f *fakeEdges) HasStudentEdge(_ context.Context, teacherID, studentID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.students[edgeKey{teacherID, studentID}], nil
}

func TestExamPolicyCanRead(t *testing.T) {
	teacher := uuid.New()
	otherTeacher := uuid.New()
	assistant := uuid.New()
	student := uuid.New()
	exam := ExamRef{ID: uuid.New(), TeacherID: teacher}

	edges := newFakeEdges()
	edges.assistants[edgeKey{teacher, assistant}] = true
	edges.students[edgeKey{teacher, student}] = true
	policy := NewExamPolicy(edges)

	cases := []struct {
		name  string
		actor Identity
		want  bool
	}{
		{"admin selalu boleh", Identity{ID: uuid.New(), Role: constants.RoleAdmin}, true},
		{"teacher pemilik", Identity{ID: teacher, Role: constants.RoleTeacher}, true},
		{"teacher lain ditolak", Identity{ID: otherTeacher, Role: constants.RoleTeacher}, false},
		{"assistant dengan edge", Identity{ID: assistant, Role: constants.RoleAssistant}, true},
		{"assistant tanpa edge", Identity{ID: uuid.New(), Role: constants.RoleAssistant}, false},
		{"student dengan edge", Identity{ID: student, Role: constants.RoleStudent}, true},
		{"student tanpa edge", Identity{ID: uuid.New(), Role: constants.RoleStudent}, false},
		{"role tak dikenal", Identity{ID: uuid.New(), Role: "superuser"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := policy.CanRead(context.Background(), tc.actor, exam)
			if err != nil {
				t.Fatalf("CanRead: %v", err)
			}
			if got != tc.want {
				t.Errorf("CanRead = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExamPolicyCanReadEdgeError(t *testing.T) {
	edges := newFakeEdges()
	edges.err = errors.New("db down")
	policy := NewExamPolicy(edges)

	actor := Identity{ID: uuid.New(), Role: constants.RoleStudent}
	ok, err := policy.CanRead(context.Background(), actor, ExamRef{ID: uuid.New(), TeacherID: uuid.New()})
	if err == nil {
		t.Fatal("expected error from edge checker to propagate")
	}
	if ok {
		t.Error("CanRead returned true alongside an error")
	}
}

func TestExamPolicyCanWrite(t *testing.T) {
	owner := uuid.New()
	exam := ExamRef{ID: uuid.New(), TeacherID: owner}
	policy := NewExamPolicy(newFakeEdges())

	cases := []struct {
		name  string
		actor Identity
		want  bool
	}{
		{"admin", Identity{ID: uuid.New(), Role: constants.RoleAdmin}, true},
		{"teacher pemilik", Identity{ID: owner, Role: constants.RoleTeacher}, true},
		{"teacher lain", Identity{ID: uuid.New(), Role: constants.RoleTeacher}, false},
		{"assistant pemilik", Identity{ID: owner, Role: constants.RoleAssistant}, true},
		{"assistant lain", Identity{ID: uuid.New(), Role: constants.RoleAssistant}, false},
		{"student", Identity{ID: uuid.New(), Role: constants.RoleStudent}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.CanWrite(tc.actor, exam); got != tc.want {
				t.Errorf("CanWrite = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExamPolicyCanDelete(t *testing.T) {
	owner := uuid.New()
	exam := ExamRef{ID: uuid.New(), TeacherID: owner}
	policy := NewExamPolicy(newFakeEdges())

	cases := []struct {
		name  string
		actor Identity
		want  bool
	}{
		{"admin", Identity{ID: uuid.New(), Role: constants.RoleAdmin}, true},
		{"teacher pemilik", Identity{ID: owner, Role: constants.RoleTeacher}, true},
		{"teacher lain", Identity{ID: uuid.New(), Role: constants.RoleTeacher}, false},
		{"assistant pemilik pun ditolak", Identity{ID: owner, Role: constants.RoleAssistant}, false},
		{"student", Identity{ID: uuid.New(), Role: constants.RoleStudent}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.CanDelete(tc.actor, exam); got != tc.want {
				t.Errorf("CanDelete = %v, want %v", got, tc.want)
			}
		})
	}
}
