// file: internals/features/users/user/controller/teacher_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hader_backend/internals/constants"
	authService "hader_backend/internals/features/users/auth/service"
	"hader_backend/internals/features/users/user/dto"
	userModel "hader_backend/internals/features/users/user/model"
	helper "hader_backend/internals/helpers"
)

// TeacherAdminController: manajemen akun teacher dari panel admin.
type TeacherAdminController struct {
	DB *gorm.DB
}

func NewTeacherAdminController(db *gorm.DB) *TeacherAdminController {
	return &TeacherAdminController{DB: db}
}

// GET /api/admin/teachers — list teacher + jumlah student/assistant terhubung
func (ctl *TeacherAdminController) List(c *fiber.Ctx) error {
	var rows []dto.TeacherResponse
	err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Select(`users.id, users.name, users.email, users.created_at,
			(SELECT COUNT(*) FROM teacher_students WHERE teacher_students.teacher_id = users.id) AS student_count,
			(SELECT COUNT(*) FROM teacher_assistants WHERE teacher_assistants.teacher_id = users.id) AS assistant_count`).
		Where("users.role = ?", constants.RoleTeacher).
		Order("users.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] List teachers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonList(c, "", rows)
}

// POST /api/admin/teachers
func (ctl *TeacherAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] HashPassword:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	teacher := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     constants.RoleTeacher,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Create teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.JsonCreated(c, "Teacher created successfully", dto.FromModelUser(&teacher))
}

// PUT /api/admin/teachers
func (ctl *TeacherAdminController) Update(c *fiber.Ctx) error {
	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("id = ? AND role = ?", req.ID, constants.RoleTeacher).
		Updates(map[string]any{"name": req.Name, "email": req.Email})
	if res.Error != nil {
		log.Println("[ERROR] Update teacher:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonUpdated(c, "Teacher updated successfully", nil)
}

// DELETE /api/admin/teachers
func (ctl *TeacherAdminController) Delete(c *fiber.Ctx) error {
	var req struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ? AND role = ?", req.ID, constants.RoleTeacher).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete teacher:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonDeleted(c, "Teacher deleted successfully", nil)
}
