// file: internals/features/lms/attendance/controller/attendance_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hader_backend/internals/features/lms/attendance/dto"
	attendanceModel "hader_backend/internals/features/lms/attendance/model"
	helper "hader_backend/internals/helpers"
)

var validate = validator.New()

const dayOrderExpr = `CASE lectures.day
	WHEN 'Sunday' THEN 0
	WHEN 'Monday' THEN 1
	WHEN 'Tuesday' THEN 2
	WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4
	WHEN 'Friday' THEN 5
	WHEN 'Saturday' THEN 6
	ELSE 7 END`

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance — admin & teacher (gate di route).
// Toggle idempotent: attended=true insert (conflict diabaikan),
// attended=false hapus baris. Toggle berulang aman.
func (ctl *AttendanceController) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserID == uuid.Nil || req.LectureID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId dan lectureId wajib diisi")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Attended {
		row := attendanceModel.AttendanceModel{
			UserID:    req.UserID,
			LectureID: req.LectureID,
			Attended:  true,
		}
		if err := ctl.DB.WithContext(c.Context()).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row).Error; err != nil {
			log.Println("[ERROR] Toggle attendance insert:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
		return helper.JsonOK(c, "", fiber.Map{"success": true, "action": "marked"})
	}

	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ? AND lecture_id = ?", req.UserID, req.LectureID).
		Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
		log.Println("[ERROR] Toggle attendance delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.JsonOK(c, "", fiber.Map{"success": true, "action": "unmarked"})
}

// GET /api/attendance?searchQuery=... — admin & teacher.
// Rekap hadir saja, urut hari lalu nama.
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).
		Table("attendance").
		Select(`attendance.user_id,
			users.name AS user_name,
			attendance.lecture_id,
			lectures.name AS lecture_name,
			lectures.day AS lecture_day`).
		Joins("INNER JOIN users ON users.id = attendance.user_id").
		Joins("INNER JOIN lectures ON lectures.id = attendance.lecture_id")

	if search := c.Query("searchQuery"); search != "" {
		q = q.Where("users.name LIKE ?", "%"+search+"%")
	}

	var rows []dto.AttendanceRow
	if err := q.Order(dayOrderExpr).Order("users.name").Scan(&rows).Error; err != nil {
		log.Println("[ERROR] List attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonList(c, "", rows)
}
