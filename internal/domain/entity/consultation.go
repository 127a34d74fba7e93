package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Lieu string

const (
	LieuCabinet Lieu = "Cabinet"
	LieuPort    Lieu = "Port"
)

var Lieux = []Lieu{LieuCabinet, LieuPort}

// RestGrant is the medical leave attached to a consultation. Duree and the
// dates are pointers so that an absent value stays distinguishable from zero.
type RestGrant struct {
	Accorde   bool       `gorm:"not null;default:false" json:"accorde"`
	Duree     *int       `json:"duree,omitempty"`
	DateDebut *time.Time `gorm:"type:date" json:"dateDebut,omitempty"`
	DateFin   *time.Time `gorm:"type:date" json:"dateFin,omitempty"`
	Motif     string     `gorm:"type:text" json:"motif,omitempty"`
}

// Normalize drops the leave details of a grant that was not accorded.
func (r RestGrant) Normalize() RestGrant {
	if !r.Accorde {
		return RestGrant{}
	}
	return r
}

// Days returns the granted leave length, zero when nothing was accorded.
func (r RestGrant) Days() int {
	if !r.Accorde || r.Duree == nil {
		return 0
	}
	return *r.Duree
}

// Consultation is one visit of an employee to a doctor. Employee and doctor
// names are copied at consultation time and are not refreshed afterwards.
type Consultation struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeID        uuid.UUID           `gorm:"column:employe_id;type:uuid;not null;index" json:"employeId"`
	EmployeNom       string              `gorm:"column:employe_nom;type:varchar(255)" json:"employeNom"`
	EmployeMatricule string              `gorm:"column:employe_matricule;type:varchar(50)" json:"employeMatricule"`
	MedecinID        uuid.UUID           `gorm:"column:medecin_id;type:uuid;not null;index" json:"medecinId"`
	MedecinNom       string              `gorm:"column:medecin_nom;type:varchar(255)" json:"medicinNom"`
	Date             time.Time           `gorm:"not null;index" json:"date"`
	Lieu             Lieu                `gorm:"type:varchar(20);not null;index" json:"lieu"`
	Motif            string              `gorm:"type:text" json:"motif"`
	Diagnostic       string              `gorm:"type:text" json:"diagnostic"`
	Traitement       string              `gorm:"type:text" json:"traitement"`
	Observations     string              `gorm:"type:text" json:"observations"`
	Cout             decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"cout"`
	Repos            RestGrant           `gorm:"embedded;embeddedPrefix:repos_" json:"repos"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Consultation) TableName() string {
	return "consultations"
}

func (Consultation) RecordKind() Kind { return KindConsultation }

func (c Consultation) RecordID() uuid.UUID { return c.ID }
