// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "schools24_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
	UserID   string `json:"userId" validate:"required,max=50"`

	SchoolID *uuid.UUID `json:"school_id,omitempty"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	UserID    string    `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		UserID:    m.UserID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserResponses(ms []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUserResponse(m))
	}
	return out
}
