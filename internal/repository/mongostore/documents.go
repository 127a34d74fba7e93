package mongostore

import (
	"fmt"
	"time"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type employeeDoc struct {
	ID                  string    `bson:"_id"`
	Matricule           string    `bson:"matricule"`
	Nom                 string    `bson:"nom"`
	Prenom              string    `bson:"prenom"`
	Civilite            string    `bson:"civilite"`
	IntituleUnite       string    `bson:"intituleUnite,omitempty"`
	EmploiOccupe        string    `bson:"emploiOccupe,omitempty"`
	IntituleDepartement string    `bson:"intituleDepartement,omitempty"`
	CreatedAt           time.Time `bson:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt"`
}

func newEmployeeDoc(e *entity.Employee) employeeDoc {
	return employeeDoc{
		ID:                  e.ID.String(),
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

func (d employeeDoc) toEntity() (entity.Employee, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("employee %q: %w", d.ID, err)
	}
	return entity.Employee{
		ID:                  id,
		Matricule:           d.Matricule,
		Nom:                 d.Nom,
		Prenom:              d.Prenom,
		Civilite:            entity.Civilite(d.Civilite),
		IntituleUnite:       d.IntituleUnite,
		EmploiOccupe:        d.EmploiOccupe,
		IntituleDepartement: d.IntituleDepartement,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}, nil
}

type doctorDoc struct {
	ID         string    `bson:"_id"`
	Nom        string    `bson:"nom"`
	Prenom     string    `bson:"prenom"`
	Specialite string    `bson:"specialite,omitempty"`
	Telephone  string    `bson:"telephone"`
	Role       string    `bson:"role"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func newDoctorDoc(d *entity.Doctor) doctorDoc {
	return doctorDoc{
		ID:         d.ID.String(),
		Nom:        d.Nom,
		Prenom:     d.Prenom,
		Specialite: d.Specialite,
		Telephone:  d.Telephone,
		Role:       string(d.Role),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (d doctorDoc) toEntity() (entity.Doctor, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Doctor{}, fmt.Errorf("doctor %q: %w", d.ID, err)
	}
	return entity.Doctor{
		ID:         id,
		Nom:        d.Nom,
		Prenom:     d.Prenom,
		Specialite: d.Specialite,
		Telephone:  d.Telephone,
		Role:       entity.DoctorRole(d.Role),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

type restGrantDoc struct {
	Accorde   bool       `bson:"accorde"`
	Duree     *int       `bson:"duree,omitempty"`
	DateDebut *time.Time `bson:"dateDebut,omitempty"`
	DateFin   *time.Time `bson:"dateFin,omitempty"`
	Motif     string     `bson:"motif,omitempty"`
}

type consultationDoc struct {
	ID               string                `bson:"_id"`
	EmployeID        string                `bson:"employeId"`
	EmployeNom       string                `bson:"employeNom"`
	EmployeMatricule string                `bson:"employeMatricule"`
	MedecinID        string                `bson:"medecinId"`
	MedecinNom       string                `bson:"medicinNom"`
	Date             time.Time             `bson:"date"`
	Lieu             string                `bson:"lieu"`
	Motif            string                `bson:"motif,omitempty"`
	Diagnostic       string                `bson:"diagnostic,omitempty"`
	Traitement       string                `bson:"traitement,omitempty"`
	Observations     string                `bson:"observations,omitempty"`
	Cout             *primitive.Decimal128 `bson:"cout,omitempty"`
	Repos            restGrantDoc          `bson:"repos"`
	CreatedAt        time.Time             `bson:"createdAt"`
	UpdatedAt        time.Time             `bson:"updatedAt"`
}

func newConsultationDoc(c *entity.Consultation) (consultationDoc, error) {
	doc := consultationDoc{
		ID:               c.ID.String(),
		EmployeID:        c.EmployeID.String(),
		EmployeNom:       c.EmployeNom,
		EmployeMatricule: c.EmployeMatricule,
		MedecinID:        c.MedecinID.String(),
		MedecinNom:       c.MedecinNom,
		Date:             c.Date,
		Lieu:             string(c.Lieu),
		Motif:            c.Motif,
		Diagnostic:       c.Diagnostic,
		Traitement:       c.Traitement,
		Observations:     c.Observations,
		Repos: restGrantDoc{
			Accorde:   c.Repos.Accorde,
			Duree:     c.Repos.Duree,
			DateDebut: c.Repos.DateDebut,
			DateFin:   c.Repos.DateFin,
			Motif:     c.Repos.Motif,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Cout.Valid {
		cout, err := primitive.ParseDecimal128(c.Cout.Decimal.String())
		if err != nil {
			return consultationDoc{}, fmt.Errorf("consultation cout: %w", err)
		}
		doc.Cout = &cout
	}
	return doc, nil
}

func (d consultationDoc) toEntity() (entity.Consultation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Consultation{}, fmt.Errorf("consultation %q: %w", d.ID, err)
	}
	employeID, err := uuid.Parse(d.EmployeID)
	if err != nil {
		return entity.Consultation{}, fmt.Errorf("consultation %q employeId: %w", d.ID, err)
	}
	medecinID, err := uuid.Parse(d.MedecinID)
	if err != nil {
		return entity.Consultation{}, fmt.Errorf("consultation %q medecinId: %w", d.ID, err)
	}

	c := entity.Consultation{
		ID:               id,
		EmployeID:        employeID,
		EmployeNom:       d.EmployeNom,
		EmployeMatricule: d.EmployeMatricule,
		MedecinID:        medecinID,
		MedecinNom:       d.MedecinNom,
		Date:             d.Date,
		Lieu:             entity.Lieu(d.Lieu),
		Motif:            d.Motif,
		Diagnostic:       d.Diagnostic,
		Traitement:       d.Traitement,
		Observations:     d.Observations,
		Repos: entity.RestGrant{
			Accorde:   d.Repos.Accorde,
			Duree:     d.Repos.Duree,
			DateDebut: d.Repos.DateDebut,
			DateFin:   d.Repos.DateFin,
			Motif:     d.Repos.Motif,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Cout != nil {
		cout, err := decimal.NewFromString(d.Cout.String())
		if err != nil {
			return entity.Consultation{}, fmt.Errorf("consultation %q cout: %w", d.ID, err)
		}
		c.Cout = decimal.NewNullDecimal(cout)
	}
	return c, nil
}

type userDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Nom       string    `bson:"nom"`
	Prenom    string    `bson:"prenom"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:        u.ID.String(),
		Email:     u.Email,
		Nom:       u.Nom,
		Prenom:    u.Prenom,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toEntity() (entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.User{}, fmt.Errorf("user %q: %w", d.ID, err)
	}
	return entity.User{
		ID:        id,
		Email:     d.Email,
		Nom:       d.Nom,
		Prenom:    d.Prenom,
		Role:      entity.UserRole(d.Role),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type credentialDoc struct {
	UserID       string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func newCredentialDoc(c *entity.Credential) credentialDoc {
	return credentialDoc{
		UserID:       c.UserID.String(),
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (d credentialDoc) toEntity() (entity.Credential, error) {
	id, err := uuid.Parse(d.UserID)
	if err != nil {
		return entity.Credential{}, fmt.Errorf("credential %q: %w", d.UserID, err)
	}
	return entity.Credential{
		UserID:       id,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

type auditLogDoc struct {
	ID        int64                  `bson:"_id"`
	UserID    string                 `bson:"userId,omitempty"`
	Action    string                 `bson:"action"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty"`
	CreatedAt time.Time              `bson:"createdAt"`
}

func newAuditLogDoc(l *entity.AuditLog) auditLogDoc {
	doc := auditLogDoc{
		ID:        l.ID,
		Action:    l.Action,
		Metadata:  l.Metadata,
		CreatedAt: l.CreatedAt,
	}
	if l.UserID != nil {
		doc.UserID = l.UserID.String()
	}
	return doc
}

func (d auditLogDoc) toEntity() (entity.AuditLog, error) {
	l := entity.AuditLog{
		ID:        d.ID,
		Action:    d.Action,
		Metadata:  entity.JSON(d.Metadata),
		CreatedAt: d.CreatedAt,
	}
	if d.UserID != "" {
		id, err := uuid.Parse(d.UserID)
		if err != nil {
			return entity.AuditLog{}, fmt.Errorf("audit log %d userId: %w", d.ID, err)
		}
		l.UserID = &id
	}
	return l, nil
}
