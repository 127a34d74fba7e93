package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type EmployeeRequest struct {
	Matricule           string `json:"matricule" validate:"required,max=50"`
	Nom                 string `json:"nom" validate:"required,max=100"`
	Prenom              string `json:"prenom" validate:"required,max=100"`
	Civilite            string `json:"civilite" validate:"required,oneof=Monsieur Madame Mademoiselle"`
	IntituleUnite       string `json:"intituleUnite" validate:"omitempty,max=255"`
	EmploiOccupe        string `json:"emploiOccupe" validate:"omitempty,max=255"`
	IntituleDepartement string `json:"intituleDepartement" validate:"omitempty,max=255"`
}

// Response DTOs

type EmployeeResponse struct {
	ID                  uuid.UUID `json:"id"`
	Matricule           string    `json:"matricule"`
	Nom                 string    `json:"nom"`
	Prenom              string    `json:"prenom"`
	Civilite            string    `json:"civilite"`
	IntituleUnite       string    `json:"intituleUnite"`
	EmploiOccupe        string    `json:"emploiOccupe"`
	IntituleDepartement string    `json:"intituleDepartement"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
