//go:build integration

// Butuh postgres hidup: TEST_DATABASE_DSN harus menunjuk database kosong.
// Jalankan: go test -tags=integration ./internals/features/lms/roster/...
package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	rosterModel "hader_backend/internals/features/lms/roster/model"
	userModel "hader_backend/internals/features/users/user/model"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		log.Println("TEST_DATABASE_DSN kosong, skip integration test")
		os.Exit(0)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&rosterModel.TeacherStudentModel{},
		&rosterModel.TeacherAssistantModel{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	testDB = db

	code := m.Run()

	testDB.Exec("DELETE FROM teacher_students")
	testDB.Exec("DELETE FROM teacher_assistants")
	testDB.Exec("DELETE FROM users")
	os.Exit(code)
}

func seedUser(t *testing.T, role string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		ID:       uuid.New(),
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%s@test.local", role, uuid.New()),
		Password: "x-not-a-real-hash",
		Role:     role,
	}
	if err := testDB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func TestTwoHopAssistantVisibility(t *testing.T) {
	ctx := context.Background()
	teacher := seedUser(t, "teacher")
	assistant := seedUser(t, "assistant")
	student := seedUser(t, "student")

	if err := AddEdge(ctx, testDB, teacher, student, EdgeKindStudent); err != nil {
		t.Fatalf("add student edge: %v", err)
	}
	if err := AddEdge(ctx, testDB, teacher, assistant, EdgeKindAssistant); err != nil {
		t.Fatalf("add assistant edge: %v", err)
	}

	visible, err := StudentsVisibleToAssistant(ctx, testDB, assistant)
	if err != nil {
		t.Fatalf("StudentsVisibleToAssistant: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != student {
		t.Fatalf("visible = %v, want tepat satu student %s", visible, student)
	}

	// cabut delegasi assistant: visibilitas dua hop ikut hilang
	if err := RemoveEdge(ctx, testDB, teacher, assistant, EdgeKindAssistant); err != nil {
		t.Fatalf("remove assistant edge: %v", err)
	}
	visible, err = StudentsVisibleToAssistant(ctx, testDB, assistant)
	if err != nil {
		t.Fatalf("StudentsVisibleToAssistant after revoke: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("visible after revoke = %v, want kosong", visible)
	}
}

func TestTwoHopVisibilityIsDistinct(t *testing.T) {
	ctx := context.Background()
	t1 := seedUser(t, "teacher")
	t2 := seedUser(t, "teacher")
	assistant := seedUser(t, "assistant")
	shared := seedUser(t, "student")

	// satu student dipegang dua teacher yang sama-sama dibantu assistant
	for _, teacher := range []uuid.UUID{t1, t2} {
		if err := AddEdge(ctx, testDB, teacher, shared, EdgeKindStudent); err != nil {
			t.Fatalf("add student edge: %v", err)
		}
		if err := AddEdge(ctx, testDB, teacher, assistant, EdgeKindAssistant); err != nil {
			t.Fatalf("add assistant edge: %v", err)
		}
	}

	visible, err := StudentsVisibleToAssistant(ctx, testDB, assistant)
	if err != nil {
		t.Fatalf("StudentsVisibleToAssistant: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("visible = %d baris, want 1 (tanpa duplikat)", len(visible))
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	ctx := context.Background()
	teacher := seedUser(t, "teacher")
	student := seedUser(t, "student")

	for i := 0; i < 3; i++ {
		if err := AddEdge(ctx, testDB, teacher, student, EdgeKindStudent); err != nil {
			t.Fatalf("add #%d: %v", i, err)
		}
	}

	var n int64
	testDB.Model(&rosterModel.TeacherStudentModel{}).
		Where("teacher_id = ? AND student_id = ?", teacher, student).
		Count(&n)
	if n != 1 {
		t.Fatalf("edge rows = %d, want 1", n)
	}

	// remove edge yang sudah tidak ada juga bukan error
	if err := RemoveEdge(ctx, testDB, teacher, student, EdgeKindStudent); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := RemoveEdge(ctx, testDB, teacher, student, EdgeKindStudent); err != nil {
		t.Fatalf("remove kedua: %v", err)
	}
}

func TestEdgeCheckerAgainstDB(t *testing.T) {
	ctx := context.Background()
	teacher := seedUser(t, "teacher")
	assistant := seedUser(t, "assistant")

	edges := NewGormEdges(testDB)

	ok, err := edges.HasAssistantEdge(ctx, teacher, assistant)
	if err != nil {
		t.Fatalf("HasAssistantEdge: %v", err)
	}
	if ok {
		t.Fatal("edge belum dibuat tapi checker bilang ada")
	}

	if err := AddEdge(ctx, testDB, teacher, assistant, EdgeKindAssistant); err != nil {
		t.Fatalf("add: %v", err)
	}
	ok, err = edges.HasAssistantEdge(ctx, teacher, assistant)
	if err != nil {
		t.Fatalf("HasAssistantEdge: %v", err)
	}
	if !ok {
		t.Fatal("edge sudah dibuat tapi checker bilang tidak ada")
	}
}

func TestAddEdgeUnknownKind(t *testing.T) {
	err := AddEdge(context.Background(), testDB, uuid.New(), uuid.New(), "parent")
	if err != ErrUnknownEdgeKind {
		t.Fatalf("err = %v, want ErrUnknownEdgeKind", err)
	}
}
