// file: internals/features/lms/exams/controller/exam_attempt_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"hader_backend/internals/features/lms/exams/dto"
	examModel "hader_backend/internals/features/lms/exams/model"
	examService "hader_backend/internals/features/lms/exams/service"
	helper "hader_backend/internals/helpers"
	helperAuth "hader_backend/internals/helpers/auth"
)

// POST /api/exams/:id/start — student only (gate di route).
// Balikin metadata exam + soal (redacted) + deadline server-side.
// Idempotent: start kedua mengembalikan started_at pertama.
func (ctl *ExamController) StartAttempt(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}

	svc := examService.NewExamAttemptService(ctl.DB)
	attempt, err := svc.StartAttempt(c.Context(), exam.ID, actor.ID)
	if err != nil {
		log.Println("[ERROR] StartAttempt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start exam")
	}

	var questions []examModel.ExamQuestionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("exam_id = ?", exam.ID).
		Order("created_at").
		Find(&questions).Error; err != nil {
		log.Println("[ERROR] StartAttempt questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start exam")
	}

	return helper.JsonOK(c, "", dto.StartAttemptResponse{
		Exam:      dto.FromModelExam(exam, ""),
		Questions: dto.FromModelQuestions(questions, true), // student: selalu redacted
		StartedAt: attempt.StartedAt,
		Deadline:  examService.Deadline(attempt.StartedAt, exam.DurationMinutes),
	})
}

// POST /api/exams/:id/submit — student only (gate di route).
func (ctl *ExamController) SubmitAttempt(c *fiber.Ctx) error {
	actor, err := helperAuth.GetIdentity(c)
	if err != nil {
		return err
	}
	exam, ferr := ctl.loadExamForActor(c, actor)
	if ferr != nil {
		return ferr
	}

	var req dto.SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Answers == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "answers wajib diisi")
	}

	svc := examService.NewExamAttemptService(ctl.DB)
	result, err := svc.Submit(c.Context(), exam.ID, actor.ID, examService.ParseAnswerMap(req.Answers))
	if err != nil {
		switch err {
		case examService.ErrExamNotFound:
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		case examService.ErrAttemptNotStarted:
			return helper.JsonError(c, fiber.StatusBadRequest, "Attempt belum dimulai")
		case examService.ErrDeadlineExceeded:
			return helper.JsonError(c, fiber.StatusBadRequest, "Waktu pengerjaan sudah habis")
		default:
			log.Println("[ERROR] SubmitAttempt:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit exam")
		}
	}

	return helper.JsonOK(c, "", fiber.Map{"score": result.Score})
}
