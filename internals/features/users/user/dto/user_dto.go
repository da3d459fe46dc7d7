package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "hader_backend/internals/features/users/user/model"
)

// ========================== REQUEST ==========================

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin teacher assistant student"`
}

type CreateTeacherRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateTeacherRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Name  string    `json:"name" validate:"required,min=3,max=100"`
	Email string    `json:"email" validate:"required,email"`
}

// ========================== RESPONSE ==========================

// UserResponse: tanpa kolom password.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherResponse: baris list teacher di panel admin,
// plus jumlah student/assistant yang terhubung.
type TeacherResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	StudentCount   int64     `json:"student_count"`
	AssistantCount int64     `json:"assistant_count"`
}

func FromModelUser(m *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func FromModelUsers(rows []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelUser(&rows[i]))
	}
	return out
}
