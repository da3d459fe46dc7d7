package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	"hader_backend/internals/features/lms/exams/dto"
	examModel "hader_backend/internals/features/lms/exams/model"
	rosterService "hader_backend/internals/features/lms/roster/service"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

var validate = validator.New()

type ExamController struct {
	DB     *gorm.DB
	Policy *helperAuth.ExamPolicy
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{
		DB:     db,
		Policy: helperAuth.NewExamPolicy(rosterService.NewGormEdges(db)),
	}
}

// visibleExams: query dasar listing — filter per role, konsisten dengan
// ExamPolicy.CanRead (admin semua, teacher miliknya, assistant/student
// lewat edge delegasi).
func (ctl *ExamController) visibleExams(c *fiber.Ctx, actor helperAuth.Identity) *gorm.DB {
	q := ctl.DB.WithContext(c.Context()).
		Model(&examModel.ExamModel{}).
		Select("exams.*, u.name AS teacher_name").
		Joins("LEFT JOIN users u ON exams.teacher_id = u.id")

	switch actor.Role {
	case constants.RoleAdmin:
		// tanpa filter
	case constants.RoleTeacher:
		q = q.Where("exams.teacher_id = ?", actor.ID)
	case constants.RoleAssistant:
		q = q.Joins("INNER JOIN teacher_assistants ta ON exams.teacher_id = ta.teacher_id").
			Where("ta.assistant_id = ?", actor.ID)
	case constants.RoleStudent:
		q = q.Joins("INNER JOIN teacher_students ts ON exams.teacher_id = ts.teacher_id").
			Where("ts.student_id = ?", actor.ID)
	default:
		q = q.Where("1 = 0")
	}
	return q
}

// GET /api/exams
func (ctl *ExamController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	var rows []dto.ExamResponse
	if err := ctl.visibleExams(c, actor).
		Order("exams.created_at DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] List exams:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}
	return helper.JsonList(c, "", rows)
}

// GET /api/exams/:id
func (ctl *ExamController) Detail(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam id tidak valid")
	}

	// exam yang tidak visible dibalas 404, bukan 401 — jangan bocorkan
	// keberadaan exam milik teacher lain.
	var row dto.ExamResponse
	err = ctl.visibleExams(c, actor).
		Where("exams.id = ?", examID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		log.Println("[ERROR] Detail exam:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}
	if row.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/exams — role staff (gate di route); pembuat jadi pemilik.
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	exam := examModel.ExamModel{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.Duration,
		TotalMarks:      req.TotalMarks,
		TeacherID:       actor.ID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&exam).Error; err != nil {
		log.Println("[ERROR] Create exam:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}

	return helper.JsonCreated(c, "Exam created successfully", dto.FromModelExam(&exam, actor.Name))
}

// PUT /api/exams
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(c.Context()).First(&exam, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		log.Println("[ERROR] Update exam load:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam")
	}

	if !ctl.Policy.CanWrite(actor, helperAuth.ExamRef{ID: exam.ID, TeacherID: exam.TeacherID}) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&exam).
		Updates(map[string]any{
			"title":       req.Title,
			"description": req.Description,
			"duration":    req.Duration,
			"total_marks": req.TotalMarks,
		}).Error; err != nil {
		log.Println("[ERROR] Update exam:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam")
	}

	return helper.JsonUpdated(c, "Exam updated successfully", nil)
}

// DELETE /api/exams — assistant tidak boleh (gate di route + policy).
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}

	var req struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(c.Context()).First(&exam, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		log.Println("[ERROR] Delete exam load:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete exam")
	}

	if !ctl.Policy.CanDelete(actor, helperAuth.ExamRef{ID: exam.ID, TeacherID: exam.TeacherID}) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// soal ikut terhapus; submission dibiarkan untuk audit
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", exam.ID).
			Delete(&examModel.ExamQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&exam).Error
	})
	if err != nil {
		log.Println("[ERROR] Delete exam:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete exam")
	}

	return helper.JsonDeleted(c, "Exam deleted successfully", nil)
}
