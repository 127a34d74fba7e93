package entity

import (
	"time"

	"github.com/google/uuid"
)

type DoctorRole string

const (
	DoctorRoleMedecin   DoctorRole = "medecin"
	DoctorRoleInfirmier DoctorRole = "infirmier"
)

var DoctorRoles = []DoctorRole{DoctorRoleMedecin, DoctorRoleInfirmier}

// Doctor is a member of the clinic staff who runs consultations.
type Doctor struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Nom        string     `gorm:"type:varchar(100);not null" json:"nom"`
	Prenom     string     `gorm:"type:varchar(100);not null" json:"prenom"`
	Specialite string     `gorm:"type:varchar(100);index" json:"specialite"`
	Telephone  string     `gorm:"type:varchar(30);uniqueIndex:idx_doctors_telephone;not null" json:"telephone"`
	Role       DoctorRole `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (Doctor) RecordKind() Kind { return KindDoctor }

func (d Doctor) RecordID() uuid.UUID { return d.ID }

// DisplayName renders "Nom Prenom".
func (d Doctor) DisplayName() string {
	return d.Nom + " " + d.Prenom
}
