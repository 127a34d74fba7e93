package entity

import (
	"time"

	"github.com/google/uuid"
)

type Civilite string

const (
	CiviliteMonsieur     Civilite = "Monsieur"
	CiviliteMadame       Civilite = "Madame"
	CiviliteMademoiselle Civilite = "Mademoiselle"
)

// Civilites lists the accepted civilite values.
var Civilites = []Civilite{CiviliteMonsieur, CiviliteMadame, CiviliteMademoiselle}

// Employee is a company employee followed by the clinic.
type Employee struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Matricule           string    `gorm:"type:varchar(50);uniqueIndex:idx_employees_matricule;not null" json:"matricule"`
	Nom                 string    `gorm:"type:varchar(100);not null" json:"nom"`
	Prenom              string    `gorm:"type:varchar(100);not null" json:"prenom"`
	Civilite            Civilite  `gorm:"type:varchar(20);not null" json:"civilite"`
	IntituleUnite       string    `gorm:"type:varchar(255)" json:"intituleUnite"`
	EmploiOccupe        string    `gorm:"type:varchar(255)" json:"emploiOccupe"`
	IntituleDepartement string    `gorm:"type:varchar(255)" json:"intituleDepartement"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

func (Employee) RecordKind() Kind { return KindEmployee }

func (e Employee) RecordID() uuid.UUID { return e.ID }

// FullName renders "Prenom Nom", the form used on report rows.
func (e Employee) FullName() string {
	return e.Prenom + " " + e.Nom
}
