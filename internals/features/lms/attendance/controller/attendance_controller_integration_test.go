//go:build integration

// Butuh postgres hidup: TEST_DATABASE_DSN harus menunjuk database kosong.
// Jalankan: go test -tags=integration ./internals/features/lms/attendance/...
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "hader_backend/internals/features/lms/attendance/model"
	lectureModel "hader_backend/internals/features/lms/lectures/model"
	userModel "hader_backend/internals/features/users/user/model"
)

var (
	testDB  *gorm.DB
	testApp *fiber.App
)

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
		&lectureModel.LectureModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	testDB = db

	// route dipasang tanpa middleware auth: yang diuji semantik toggle,
	// bukan rantai token
	ctl := NewAttendanceController(db)
	testApp = fiber.New()
	testApp.Post("/attendance", ctl.Toggle)
	testApp.Get("/attendance", ctl.List)

	code := m.Run()

	testDB.Exec("DELETE FROM attendance")
	testDB.Exec("DELETE FROM lectures")
	testDB.Exec("DELETE FROM users")
	os.Exit(code)
}

func seedStudent(t *testing.T, name string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		ID:       uuid.New(),
		Name:     name,
		Email:    fmt.Sprintf("%s@test.local", uuid.New()),
		Password: "x-not-a-real-hash",
		Role:     "student",
	}
	if err := testDB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func seedLecture(t *testing.T, name, day string) uuid.UUID {
	t.Helper()
	l := lectureModel.LectureModel{ID: uuid.New(), Name: name, Day: day}
	if err := testDB.Create(&l).Error; err != nil {
		t.Fatalf("seed lecture: %v", err)
	}
	return l.ID
}

func toggle(t *testing.T, userID, lectureID uuid.UUID, attended bool) *http.Response {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{
		"userId":    userID,
		"lectureId": lectureID,
		"attended":  attended,
	})
	req, _ := http.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := testApp.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func countPair(t *testing.T, userID, lectureID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := testDB.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND lecture_id = ?", userID, lectureID).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestToggleSequence(t *testing.T) {
	student := seedStudent(t, "Siswa Toggle")
	lecture := seedLecture(t, "Fiqih", "Monday")

	// true, true, false → nol baris (toggle idempoten)
	for i, step := range []bool{true, true, false} {
		resp := toggle(t, student, lecture, step)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("step %d: status = %d", i, resp.StatusCode)
		}
	}
	if n := countPair(t, student, lecture); n != 0 {
		t.Fatalf("rows = %d, want 0 setelah unmark", n)
	}

	// mark sekali lagi → tepat satu baris meski di-mark dua kali
	toggle(t, student, lecture, true)
	toggle(t, student, lecture, true)
	if n := countPair(t, student, lecture); n != 1 {
		t.Fatalf("rows = %d, want 1 setelah mark ganda", n)
	}
}

func TestToggleUnmarkMissingPairIsNoop(t *testing.T) {
	student := seedStudent(t, "Siswa Kosong")
	lecture := seedLecture(t, "Tajwid", "Tuesday")

	resp := toggle(t, student, lecture, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if n := countPair(t, student, lecture); n != 0 {
		t.Fatalf("rows = %d, want 0", n)
	}
}

func TestToggleRejectsMissingFields(t *testing.T) {
	body, _ := json.Marshal(fiber.Map{"attended": true})
	req, _ := http.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := testApp.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListFiltersBySearch(t *testing.T) {
	target := seedStudent(t, "Zaid Unik")
	other := seedStudent(t, "Bakr Lain")
	lecture := seedLecture(t, "Hadits", "Wednesday")

	toggle(t, target, lecture, true)
	toggle(t, other, lecture, true)

	req, _ := http.NewRequest(http.MethodGet, "/attendance?searchQuery=Zaid+Unik", nil)
	resp, err := testApp.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out struct {
		Data []struct {
			UserName string `json:"user_name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].UserName != "Zaid Unik" {
		t.Fatalf("data = %+v, want hanya Zaid Unik", out.Data)
	}
}
