// file: internals/features/schools/school/dto/school_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CreateSchoolRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Code    string `json:"code" validate:"required,max=30"`
	Domain  string `json:"domain" validate:"omitempty,max=120"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=255"`
	City    string `json:"city" validate:"omitempty,max=80"`
	State   string `json:"state" validate:"omitempty,max=80"`
	Country string `json:"country" validate:"omitempty,max=80"`
}

type UpdateLocksRequest struct {
	LockTeacherCreation bool `json:"lockTeacherCreation"`
	LockStudentCreation bool `json:"lockStudentCreation"`
}

type CreateSchoolUserRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	UserID   string `json:"userId" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
}

type SchoolUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	UserID string    `json:"user_id"`
}
