package converter

import (
	"time"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsultationRequestToEntity copies req onto c. Absent references stay
// uuid.Nil; the denormalized names are filled by the usecase.
func ConsultationRequestToEntity(req *dto.ConsultationRequest, c *entity.Consultation, loc *time.Location) error {
	date, err := ParseDate(req.Date, loc)
	if err != nil {
		return err
	}

	c.EmployeID = parseOptionalID(req.EmployeID)
	c.MedecinID = parseOptionalID(req.MedecinID)
	c.Date = date
	c.Lieu = entity.Lieu(req.Lieu)
	c.Motif = req.Motif
	c.Diagnostic = req.Diagnostic
	c.Traitement = req.Traitement
	c.Observations = req.Observations

	c.Cout = decimal.NullDecimal{}
	if req.Cout != nil {
		c.Cout = decimal.NewNullDecimal(*req.Cout)
	}

	dateDebut, err := parseOptionalDate(req.Repos.DateDebut, loc)
	if err != nil {
		return err
	}
	dateFin, err := parseOptionalDate(req.Repos.DateFin, loc)
	if err != nil {
		return err
	}
	c.Repos = entity.RestGrant{
		Accorde:   req.Repos.Accorde,
		Duree:     req.Repos.Duree,
		DateDebut: dateDebut,
		DateFin:   dateFin,
		Motif:     req.Repos.Motif,
	}

	return nil
}

func parseOptionalID(value string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func ConsultationToResponse(c *entity.Consultation, loc *time.Location) *dto.ConsultationResponse {
	if c == nil {
		return nil
	}

	var cout *decimal.Decimal
	if c.Cout.Valid {
		v := c.Cout.Decimal
		cout = &v
	}

	return &dto.ConsultationResponse{
		ID:               c.ID,
		EmployeID:        c.EmployeID,
		EmployeNom:       c.EmployeNom,
		EmployeMatricule: c.EmployeMatricule,
		MedecinID:        c.MedecinID,
		MedicinNom:       c.MedecinNom,
		Date:             FormatDate(c.Date, loc),
		Lieu:             string(c.Lieu),
		Motif:            c.Motif,
		Diagnostic:       c.Diagnostic,
		Traitement:       c.Traitement,
		Observations:     c.Observations,
		Cout:             cout,
		Repos: dto.RestGrantResponse{
			Accorde:   c.Repos.Accorde,
			Duree:     c.Repos.Duree,
			DateDebut: formatOptionalDate(c.Repos.DateDebut, loc),
			DateFin:   formatOptionalDate(c.Repos.DateFin, loc),
			Motif:     c.Repos.Motif,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ConsultationsToResponses(consultations []entity.Consultation, loc *time.Location) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i], loc)
	}
	return responses
}
