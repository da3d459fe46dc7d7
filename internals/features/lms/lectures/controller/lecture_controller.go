// file: internals/features/lms/lectures/controller/lecture_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hader_backend/internals/features/lms/lectures/dto"
	lectureModel "hader_backend/internals/features/lms/lectures/model"
	helper "hader_backend/internals/helpers"
)

var validate = validator.New()

// urutan minggu Sunday..Saturday, portable postgres & mysql
const dayOrderExpr = `CASE day
	WHEN 'Sunday' THEN 0
	WHEN 'Monday' THEN 1
	WHEN 'Tuesday' THEN 2
	WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4
	WHEN 'Friday' THEN 5
	WHEN 'Saturday' THEN 6
	ELSE 7 END`

type LectureController struct {
	DB *gorm.DB
}

func NewLectureController(db *gorm.DB) *LectureController {
	return &LectureController{DB: db}
}

// GET /api/lectures — semua role yang sudah login
func (ctl *LectureController) List(c *fiber.Ctx) error {
	var rows []lectureModel.LectureModel
	if err := ctl.DB.WithContext(c.Context()).
		Order(dayOrderExpr).
		Order("name").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] List lectures:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lectures")
	}

	out := make([]dto.LectureResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.LectureResponse{
			ID:        m.ID,
			Name:      m.Name,
			Day:       m.Day,
			CreatedAt: m.CreatedAt,
		})
	}
	return helper.JsonList(c, "", out)
}

// POST /api/lectures — admin & teacher (gate di route)
func (ctl *LectureController) Create(c *fiber.Ctx) error {
	var req dto.CreateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !lectureModel.IsWeekDay(req.Day) {
		return helper.JsonError(c, fiber.StatusBadRequest, "day harus salah satu dari Sunday..Saturday")
	}

	row := lectureModel.LectureModel{
		Name: req.Name,
		Day:  req.Day,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Println("[ERROR] Create lecture:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lecture")
	}
	return helper.JsonCreated(c, "Lecture berhasil dibuat", dto.LectureResponse{
		ID:        row.ID,
		Name:      row.Name,
		Day:       row.Day,
		CreatedAt: row.CreatedAt,
	})
}

// PUT /api/lectures — admin & teacher
func (ctl *LectureController) Update(c *fiber.Ctx) error {
	var req dto.UpdateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !lectureModel.IsWeekDay(req.Day) {
		return helper.JsonError(c, fiber.StatusBadRequest, "day harus salah satu dari Sunday..Saturday")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&lectureModel.LectureModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"name": req.Name,
			"day":  req.Day,
		})
	if res.Error != nil {
		log.Println("[ERROR] Update lecture:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lecture")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
	}
	return helper.JsonUpdated(c, "Lecture berhasil diperbarui", fiber.Map{"id": req.ID})
}

// DELETE /api/lectures — admin & teacher.
// Baris attendance lecture ini ikut dibersihkan.
func (ctl *LectureController) Delete(c *fiber.Ctx) error {
	var req struct {
		ID uuid.UUID `json:"id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM attendance WHERE lecture_id = ?", req.ID).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", req.ID).Delete(&lectureModel.LectureModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
		}
		log.Println("[ERROR] Delete lecture:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lecture")
	}
	return helper.JsonDeleted(c, "Lecture berhasil dihapus", fiber.Map{"id": req.ID})
}
