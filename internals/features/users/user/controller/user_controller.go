package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "hader_backend/internals/features/users/auth/service"
	"hader_backend/internals/features/users/user/dto"
	userModel "hader_backend/internals/features/users/user/model"
	helper "hader_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (ctl *UserController) List(c *fiber.Ctx) error {
	var rows []userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] List users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonList(c, "", dto.FromModelUsers(rows))
}

// POST /api/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] HashPassword:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", dto.FromModelUser(&user))
}

// DELETE /api/users
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	var req struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id wajib diisi")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&userModel.UserModel{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Println("[ERROR] Delete user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully", nil)
}
