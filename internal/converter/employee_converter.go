package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// EmployeeRequestToEntity copies the editable fields of req onto e.
func EmployeeRequestToEntity(req *dto.EmployeeRequest, e *entity.Employee) {
	e.Matricule = req.Matricule
	e.Nom = req.Nom
	e.Prenom = req.Prenom
	e.Civilite = entity.Civilite(req.Civilite)
	e.IntituleUnite = req.IntituleUnite
	e.EmploiOccupe = req.EmploiOccupe
	e.IntituleDepartement = req.IntituleDepartement
}

func EmployeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}

	return &dto.EmployeeResponse{
		ID:                  e.ID,
		Matricule:           e.Matricule,
		Nom:                 e.Nom,
		Prenom:              e.Prenom,
		Civilite:            string(e.Civilite),
		IntituleUnite:       e.IntituleUnite,
		EmploiOccupe:        e.EmploiOccupe,
		IntituleDepartement: e.IntituleDepartement,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *EmployeeToResponse(&employees[i])
	}
	return responses
}
