package rules

import (
	"errors"
	"testing"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEmployeeMatriculeUniqueness(t *testing.T) {
	existing := []entity.Employee{
		{ID: uuid.New(), Matricule: "M-001"},
		{ID: uuid.New(), Matricule: "M-002"},
	}

	err := Employee(existing, &entity.Employee{ID: uuid.New(), Matricule: "M-001"})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateKey))
	assert.Equal(t, "matricule", err.(*apperror.Error).Field)

	// updating a record to its own unchanged matricule is accepted
	self := existing[0]
	assert.NoError(t, Employee(existing, &self))

	assert.NoError(t, Employee(existing, &entity.Employee{ID: uuid.New(), Matricule: "M-003"}))
}

func TestDoctorTelephoneUniqueness(t *testing.T) {
	existing := []entity.Doctor{{ID: uuid.New(), Telephone: "44700138"}}

	assert.ErrorIs(t, Doctor(existing, &entity.Doctor{ID: uuid.New(), Telephone: "44700138"}), apperror.ErrDuplicateKey)
	assert.NoError(t, Doctor(existing, &existing[0]))
}

func TestUserEmailUniqueness(t *testing.T) {
	existing := []entity.User{{ID: uuid.New(), Email: "admin@clinic.mr"}}

	assert.ErrorIs(t, User(existing, &entity.User{ID: uuid.New(), Email: "admin@clinic.mr"}), apperror.ErrDuplicateKey)
	assert.NoError(t, User(existing, &entity.User{ID: existing[0].ID, Email: "admin@clinic.mr"}))
}

func TestPasswords(t *testing.T) {
	assert.NoError(t, Passwords("secret123", "secret123"))
	assert.ErrorIs(t, Passwords("secret123", "secret124"), apperror.ErrPasswordMismatch)
}

func day(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func intPtr(n int) *int { return &n }

func validConsultation() *entity.Consultation {
	return &entity.Consultation{
		EmployeID: uuid.New(),
		MedecinID: uuid.New(),
		Lieu:      entity.LieuCabinet,
		Repos: entity.RestGrant{
			Accorde:   true,
			Duree:     intPtr(3),
			DateDebut: day("2024-03-01"),
			DateFin:   day("2024-03-04"),
			Motif:     "Grippe",
		},
	}
}

func TestConsultation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *entity.Consultation)
		kind   apperror.Kind
		field  string
	}{
		{name: "valid", mutate: func(c *entity.Consultation) {}},
		{name: "rest not accorded ignores details", mutate: func(c *entity.Consultation) { c.Repos = entity.RestGrant{} }},
		{name: "missing employee", mutate: func(c *entity.Consultation) { c.EmployeID = uuid.Nil }, kind: apperror.KindMissingField, field: "employeId"},
		{name: "missing doctor", mutate: func(c *entity.Consultation) { c.MedecinID = uuid.Nil }, kind: apperror.KindMissingField, field: "medecinId"},
		{name: "missing lieu", mutate: func(c *entity.Consultation) { c.Lieu = "" }, kind: apperror.KindMissingField, field: "lieu"},
		{name: "missing duree", mutate: func(c *entity.Consultation) { c.Repos.Duree = nil }, kind: apperror.KindMissingField, field: "repos.duree"},
		{name: "zero duree", mutate: func(c *entity.Consultation) { c.Repos.Duree = intPtr(0) }, kind: apperror.KindMissingField, field: "repos.duree"},
		{name: "missing start", mutate: func(c *entity.Consultation) { c.Repos.DateDebut = nil }, kind: apperror.KindMissingField, field: "repos.dateDebut"},
		{name: "missing end", mutate: func(c *entity.Consultation) { c.Repos.DateFin = nil }, kind: apperror.KindMissingField, field: "repos.dateFin"},
		{name: "blank motif", mutate: func(c *entity.Consultation) { c.Repos.Motif = "  " }, kind: apperror.KindMissingField, field: "repos.motif"},
		{name: "start equals end", mutate: func(c *entity.Consultation) { c.Repos.DateFin = day("2024-03-01") }, kind: apperror.KindInvalidRange, field: "repos.dateFin"},
		{name: "start after end", mutate: func(c *entity.Consultation) { c.Repos.DateDebut = day("2024-03-10") }, kind: apperror.KindInvalidRange, field: "repos.dateFin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConsultation()
			tt.mutate(c)
			err := Consultation(c)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.Error
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.kind, appErr.Kind)
				assert.Equal(t, tt.field, appErr.Field)
			}
		})
	}
}
