package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// ConsultationRequest leaves employeId, medecinId and lieu optional at the
// decoding stage so that their absence is reported as a missing field.
type ConsultationRequest struct {
	EmployeID    string           `json:"employeId" validate:"omitempty,uuid"`
	MedecinID    string           `json:"medecinId" validate:"omitempty,uuid"`
	Date         string           `json:"date" validate:"required,datetime=2006-01-02"`
	Lieu         string           `json:"lieu" validate:"omitempty,oneof=Cabinet Port"`
	Motif        string           `json:"motif"`
	Diagnostic   string           `json:"diagnostic"`
	Traitement   string           `json:"traitement"`
	Observations string           `json:"observations"`
	Cout         *decimal.Decimal `json:"cout"`
	Repos        RestGrantRequest `json:"repos"`
}

type RestGrantRequest struct {
	Accorde   bool    `json:"accorde"`
	Duree     *int    `json:"duree"`
	DateDebut *string `json:"dateDebut" validate:"omitempty,datetime=2006-01-02"`
	DateFin   *string `json:"dateFin" validate:"omitempty,datetime=2006-01-02"`
	Motif     string  `json:"motif"`
}

// Response DTOs

type ConsultationResponse struct {
	ID               uuid.UUID         `json:"id"`
	EmployeID        uuid.UUID         `json:"employeId"`
	EmployeNom       string            `json:"employeNom"`
	EmployeMatricule string            `json:"employeMatricule"`
	MedecinID        uuid.UUID         `json:"medecinId"`
	MedicinNom       string            `json:"medicinNom"`
	Date             string            `json:"date"`
	Lieu             string            `json:"lieu"`
	Motif            string            `json:"motif"`
	Diagnostic       string            `json:"diagnostic"`
	Traitement       string            `json:"traitement"`
	Observations     string            `json:"observations"`
	Cout             *decimal.Decimal  `json:"cout"`
	Repos            RestGrantResponse `json:"repos"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type RestGrantResponse struct {
	Accorde   bool    `json:"accorde"`
	Duree     *int    `json:"duree,omitempty"`
	DateDebut *string `json:"dateDebut,omitempty"`
	DateFin   *string `json:"dateFin,omitempty"`
	Motif     string  `json:"motif,omitempty"`
}
