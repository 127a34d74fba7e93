// Package listing declares the list views of the dashboard: which fields each
// view searches, which facets it exposes and how it pages.
package listing

import (
	"fmt"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/query"
)

type View string

const (
	ViewEmployees     View = "employees"
	ViewDoctors       View = "doctors"
	ViewConsultations View = "consultations"
	ViewUsers         View = "users"
)

func ParseView(name string) (View, bool) {
	switch v := View(name); v {
	case ViewEmployees, ViewDoctors, ViewConsultations, ViewUsers:
		return v, true
	}
	return "", false
}

// Kind returns the record collection a view lists.
func (v View) Kind() entity.Kind {
	switch v {
	case ViewEmployees:
		return entity.KindEmployee
	case ViewDoctors:
		return entity.KindDoctor
	case ViewConsultations:
		return entity.KindConsultation
	case ViewUsers:
		return entity.KindUser
	}
	return ""
}

// Definition binds a view to its record schema.
type Definition[T any] struct {
	Name         View
	Schema       *query.Schema[T]
	SearchFields []query.FieldPath
	Facets       []query.FieldPath
	PageSize     int
	Policy       query.ResetPolicy
}

func (d Definition[T]) validate() error {
	if err := d.Schema.Check(d.SearchFields...); err != nil {
		return fmt.Errorf("view %s: %w", d.Name, err)
	}
	if err := d.Schema.Check(d.Facets...); err != nil {
		return fmt.Errorf("view %s: %w", d.Name, err)
	}
	return nil
}

func (d Definition[T]) NewSession() *query.Session {
	return query.NewSession(string(d.Name), d.PageSize, d.Policy)
}

func (d Definition[T]) HasFacet(path query.FieldPath) bool {
	for _, facet := range d.Facets {
		if facet == path {
			return true
		}
	}
	return false
}

// Filter applies the session's criteria to a snapshot.
func (d Definition[T]) Filter(records []T, s *query.Session) []T {
	return query.Filter(records, d.Schema, s.Criteria(d.SearchFields))
}

// Run filters a snapshot and returns the session's current page.
func (d Definition[T]) Run(records []T, s *query.Session) query.Page[T] {
	return query.Paginate(d.Filter(records, s), s.Page, s.PageSize)
}

// Catalog holds the four list view definitions.
type Catalog struct {
	Employees     Definition[entity.Employee]
	Doctors       Definition[entity.Doctor]
	Consultations Definition[entity.Consultation]
	Users         Definition[entity.User]
}

// NewCatalog builds the default views. resetOverrides switches a view to
// ResetOnCriteriaChange (true) or KeepPage (false).
func NewCatalog(resetOverrides map[string]bool) (*Catalog, error) {
	c := &Catalog{
		Employees: Definition[entity.Employee]{
			Name:         ViewEmployees,
			Schema:       EmployeeSchema,
			SearchFields: []query.FieldPath{FieldNom, FieldPrenom, FieldMatricule},
			Facets:       []query.FieldPath{FieldCivilite},
			PageSize:     query.DefaultPageSize,
			Policy:       policyFor(ViewEmployees, resetOverrides),
		},
		Doctors: Definition[entity.Doctor]{
			Name:         ViewDoctors,
			Schema:       DoctorSchema,
			SearchFields: []query.FieldPath{FieldNom, FieldPrenom, FieldSpecialite, FieldTelephone},
			Facets:       []query.FieldPath{FieldSpecialite, FieldRole},
			PageSize:     query.DefaultPageSize,
			Policy:       policyFor(ViewDoctors, resetOverrides),
		},
		Consultations: Definition[entity.Consultation]{
			Name:         ViewConsultations,
			Schema:       ConsultationSchema,
			SearchFields: []query.FieldPath{FieldEmployeID, FieldEmployeNom, FieldMedicinNom, FieldMedecinID, FieldEmployeMatricule},
			Facets:       []query.FieldPath{FieldMedecinID, FieldReposAccorde, FieldLieu},
			PageSize:     query.DefaultPageSize,
			Policy:       policyFor(ViewConsultations, resetOverrides),
		},
		Users: Definition[entity.User]{
			Name:         ViewUsers,
			Schema:       UserSchema,
			SearchFields: []query.FieldPath{FieldNom, FieldPrenom, FieldEmail},
			Facets:       []query.FieldPath{FieldRole},
			PageSize:     query.DefaultPageSize,
			Policy:       policyFor(ViewUsers, resetOverrides),
		},
	}

	for _, err := range []error{c.Employees.validate(), c.Doctors.validate(), c.Consultations.validate(), c.Users.validate()} {
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewSession returns a fresh session for the named view.
func (c *Catalog) NewSession(v View) *query.Session {
	switch v {
	case ViewEmployees:
		return c.Employees.NewSession()
	case ViewDoctors:
		return c.Doctors.NewSession()
	case ViewConsultations:
		return c.Consultations.NewSession()
	case ViewUsers:
		return c.Users.NewSession()
	}
	return nil
}

// HasFacet reports whether the named view exposes a facet on path.
func (c *Catalog) HasFacet(v View, path query.FieldPath) bool {
	switch v {
	case ViewEmployees:
		return c.Employees.HasFacet(path)
	case ViewDoctors:
		return c.Doctors.HasFacet(path)
	case ViewConsultations:
		return c.Consultations.HasFacet(path)
	case ViewUsers:
		return c.Users.HasFacet(path)
	}
	return false
}

func policyFor(v View, overrides map[string]bool) query.ResetPolicy {
	reset, ok := overrides[string(v)]
	if ok && reset {
		return query.ResetOnCriteriaChange
	}
	return query.KeepPage
}
