// Package rules holds the cross-record invariants checked against the latest
// snapshot before a record is written. Checks are optimistic: two concurrent
// writers can both pass against the same snapshot, and the storage unique
// indexes catch what slips through.
package rules

import (
	"strings"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// Employee rejects a matricule already used by another employee.
func Employee(existing []entity.Employee, candidate *entity.Employee) error {
	for _, e := range existing {
		if e.ID != candidate.ID && e.Matricule == candidate.Matricule {
			return apperror.DuplicateKey("matricule", "matricule already exists")
		}
	}
	return nil
}

// Doctor rejects a telephone already used by another doctor.
func Doctor(existing []entity.Doctor, candidate *entity.Doctor) error {
	for _, d := range existing {
		if d.ID != candidate.ID && d.Telephone == candidate.Telephone {
			return apperror.DuplicateKey("telephone", "telephone already exists")
		}
	}
	return nil
}

// User rejects an email already used by another user.
func User(existing []entity.User, candidate *entity.User) error {
	for _, u := range existing {
		if u.ID != candidate.ID && u.Email == candidate.Email {
			return apperror.DuplicateKey("email", "email already exists")
		}
	}
	return nil
}

// Passwords checks the confirmation entered when a user is created.
func Passwords(password, confirmation string) error {
	if password != confirmation {
		return apperror.PasswordMismatch()
	}
	return nil
}

// Consultation checks required references and, when a rest grant is
// accorded, its four details and date order.
func Consultation(c *entity.Consultation) error {
	if c.EmployeID == uuid.Nil {
		return apperror.MissingField("employeId")
	}
	if c.MedecinID == uuid.Nil {
		return apperror.MissingField("medecinId")
	}
	if c.Lieu == "" {
		return apperror.MissingField("lieu")
	}

	return RestGrant(c.Repos)
}

func RestGrant(r entity.RestGrant) error {
	if !r.Accorde {
		return nil
	}
	if r.Duree == nil || *r.Duree <= 0 {
		return apperror.MissingField("repos.duree")
	}
	if r.DateDebut == nil {
		return apperror.MissingField("repos.dateDebut")
	}
	if r.DateFin == nil {
		return apperror.MissingField("repos.dateFin")
	}
	if strings.TrimSpace(r.Motif) == "" {
		return apperror.MissingField("repos.motif")
	}
	if !r.DateDebut.Before(*r.DateFin) {
		return apperror.InvalidRange("repos.dateFin", "rest end date must be after its start date")
	}
	return nil
}
