package listing

import (
	"sort"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/query"
)

// FacetOption is one selectable value of a facet.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func EmployeeFacetOptions() map[query.FieldPath][]FacetOption {
	options := make([]FacetOption, 0, len(entity.Civilites))
	for _, c := range entity.Civilites {
		options = append(options, FacetOption{Value: string(c), Label: string(c)})
	}
	return map[query.FieldPath][]FacetOption{FieldCivilite: options}
}

// DoctorFacetOptions derives specialite values from the snapshot, sorted.
func DoctorFacetOptions(doctors []entity.Doctor) map[query.FieldPath][]FacetOption {
	seen := make(map[string]bool)
	var specialites []string
	for _, d := range doctors {
		if d.Specialite == "" || seen[d.Specialite] {
			continue
		}
		seen[d.Specialite] = true
		specialites = append(specialites, d.Specialite)
	}
	sort.Strings(specialites)

	specialiteOptions := make([]FacetOption, 0, len(specialites))
	for _, s := range specialites {
		specialiteOptions = append(specialiteOptions, FacetOption{Value: s, Label: s})
	}

	roleOptions := make([]FacetOption, 0, len(entity.DoctorRoles))
	for _, r := range entity.DoctorRoles {
		roleOptions = append(roleOptions, FacetOption{Value: string(r), Label: string(r)})
	}

	return map[query.FieldPath][]FacetOption{
		FieldSpecialite: specialiteOptions,
		FieldRole:       roleOptions,
	}
}

// ConsultationFacetOptions lists doctors by id in snapshot order.
func ConsultationFacetOptions(doctors []entity.Doctor) map[query.FieldPath][]FacetOption {
	doctorOptions := make([]FacetOption, 0, len(doctors))
	for _, d := range doctors {
		doctorOptions = append(doctorOptions, FacetOption{Value: d.ID.String(), Label: d.DisplayName()})
	}

	lieuOptions := make([]FacetOption, 0, len(entity.Lieux))
	for _, l := range entity.Lieux {
		lieuOptions = append(lieuOptions, FacetOption{Value: string(l), Label: string(l)})
	}

	return map[query.FieldPath][]FacetOption{
		FieldMedecinID: doctorOptions,
		FieldReposAccorde: {
			{Value: "true", Label: "Repos accordé"},
			{Value: "false", Label: "Sans repos"},
		},
		FieldLieu: lieuOptions,
	}
}

func UserFacetOptions() map[query.FieldPath][]FacetOption {
	options := make([]FacetOption, 0, len(entity.UserRoles))
	for _, r := range entity.UserRoles {
		options = append(options, FacetOption{Value: string(r), Label: string(r)})
	}
	return map[query.FieldPath][]FacetOption{FieldRole: options}
}
