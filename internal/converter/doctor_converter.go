package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// DoctorRequestToEntity copies the editable fields of req onto d.
func DoctorRequestToEntity(req *dto.DoctorRequest, d *entity.Doctor) {
	d.Nom = req.Nom
	d.Prenom = req.Prenom
	d.Specialite = req.Specialite
	d.Telephone = req.Telephone
	d.Role = entity.DoctorRole(req.Role)
}

func DoctorToResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:         d.ID,
		Nom:        d.Nom,
		Prenom:     d.Prenom,
		Specialite: d.Specialite,
		Telephone:  d.Telephone,
		Role:       string(d.Role),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
