// file: internals/features/lms/lectures/dto/lecture_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLectureRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Day  string `json:"day" validate:"required"`
}

type UpdateLectureRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name string    `json:"name" validate:"required,min=2,max=100"`
	Day  string    `json:"day" validate:"required"`
}

type LectureResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}
