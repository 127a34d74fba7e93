package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateUserRequest carries the password twice; a mismatch is reported by the
// usecase so that it surfaces as its own error kind.
type CreateUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Nom             string `json:"nom" validate:"required,max=100"`
	Prenom          string `json:"prenom" validate:"required,max=100"`
	Role            string `json:"role" validate:"required,oneof=admin user"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type UpdateUserRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Nom    string `json:"nom" validate:"required,max=100"`
	Prenom string `json:"prenom" validate:"required,max=100"`
	Role   string `json:"role" validate:"required,oneof=admin user"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}
