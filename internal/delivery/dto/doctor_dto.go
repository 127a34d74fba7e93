package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DoctorRequest struct {
	Nom        string `json:"nom" validate:"required,max=100"`
	Prenom     string `json:"prenom" validate:"required,max=100"`
	Specialite string `json:"specialite" validate:"omitempty,max=100"`
	Telephone  string `json:"telephone" validate:"required,max=30"`
	Role       string `json:"role" validate:"required,oneof=medecin infirmier"`
}

// Response DTOs

type DoctorResponse struct {
	ID         uuid.UUID `json:"id"`
	Nom        string    `json:"nom"`
	Prenom     string    `json:"prenom"`
	Specialite string    `json:"specialite"`
	Telephone  string    `json:"telephone"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
