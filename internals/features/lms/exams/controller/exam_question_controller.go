// file: internals/features/lms/exams/controller/exam_question_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	"hader_backend/internals/features/lms/exams/dto"
	examModel "hader_backend/internals/features/lms/exams/model"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

// loadExamForActor: ambil exam + cek akses baca. 404 kalau tidak ada,
// 401 kalau ada tapi actor tidak berhak.
func (ctl *ExamController) loadExamForActor(c *fiber.Ctx, actor helperAuth.Identity) (*examModel.ExamModel, error) {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "exam id tidak valid")
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(c.Context()).First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		log.Println("[ERROR] Load exam:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	allowed, err := ctl.Policy.CanRead(c.Context(), actor, helperAuth.ExamRef{ID: exam.ID, TeacherID: exam.TeacherID})
	if err != nil {
		log.Println("[ERROR] Policy CanRead:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}
	if !allowed {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return &exam, nil
}

// GET /api/exams/:id/questions
// Student TIDAK PERNAH menerima correct_answer.
func (ctl *ExamController) Questions(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}

	var rows []examModel.ExamQuestionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("exam_id = ?", exam.ID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] List questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam questions")
	}

	redact := actor.Role == constants.RoleStudent
	return helper.JsonList(c, "", dto.FromModelQuestions(rows, redact))
}

// POST /api/exams/:id/questions — pemilik exam (atau admin)
func (ctl *ExamController) CreateQuestion(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}
	if !ctl.Policy.CanWrite(actor, helperAuth.ExamRef{ID: exam.ID, TeacherID: exam.TeacherID}) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := examModel.ExamQuestionModel{
		ExamID:   exam.ID,
		Question: req.Question,
		Marks:    req.Marks,
	}
	if err := q.SetOptions(req.Options, req.CorrectAnswer); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&q).Error; err != nil {
		log.Println("[ERROR] Create question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created successfully", dto.FromModelQuestion(&q, false))
}

// DELETE /api/exams/:id/questions/:qid
func (ctl *ExamController) DeleteQuestion(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}
	if !ctl.Policy.CanWrite(actor, helperAuth.ExamRef{ID: exam.ID, TeacherID: exam.TeacherID}) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	qid, err := uuid.Parse(c.Params("qid"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "question id tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ? AND exam_id = ?", qid, exam.ID).
		Delete(&examModel.ExamQuestionModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete question:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonDeleted(c, "Question deleted successfully", nil)
}

// GET /api/exams/:id/submissions — teacher/assistant/admin per policy
func (ctl *ExamController) Submissions(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	if actor.Role == constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}

	var rows []dto.SubmissionResponse
	if err := ctl.DB.WithContext(c.Context()).
		Model(&examModel.ExamSubmissionModel{}).
		Select("exam_submissions.exam_id, exam_submissions.student_id, exam_submissions.score, exam_submissions.submitted_at, u.name AS student_name").
		Joins("LEFT JOIN users u ON exam_submissions.student_id = u.id").
		Where("exam_submissions.exam_id = ?", exam.ID).
		Order("exam_submissions.submitted_at DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] List submissions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "", rows)
}
