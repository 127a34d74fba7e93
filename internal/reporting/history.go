package reporting

import (
	"sort"
	"time"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryPageSize is the page size of the employee history view.
const HistoryPageSize = 5

type MonthCount struct {
	Month         string `json:"month"`
	Consultations int    `json:"consultations"`
}

type DoctorVisit struct {
	MedecinID     uuid.UUID `json:"medecinId"`
	Medecin       string    `json:"medecin"`
	Specialite    string    `json:"specialite"`
	Consultations int       `json:"consultations"`
}

// History is the consultation record of one employee, newest first.
type History struct {
	Employee           entity.Employee       `json:"employee"`
	Consultations      []entity.Consultation `json:"consultations"`
	TotalConsultations int                   `json:"totalConsultations"`
	TotalCost          decimal.Decimal       `json:"totalCost"`
	TotalRestDays      int                   `json:"totalRestDays"`
	ReposAccordes      int                   `json:"reposAccordes"`
	ByMonth            []MonthCount          `json:"byMonth"`
	Doctors            []DoctorVisit         `json:"doctors"`
	LastConsultation   *time.Time            `json:"lastConsultation,omitempty"`
}

func BuildHistory(employee entity.Employee, consultations []entity.Consultation, doctors []entity.Doctor, loc *time.Location) History {
	dir := NewDirectory(nil, doctors)
	if loc == nil {
		loc = time.UTC
	}

	own := make([]entity.Consultation, 0)
	for _, c := range consultations {
		if c.EmployeID == employee.ID {
			own = append(own, c)
		}
	}
	sort.SliceStable(own, func(a, b int) bool { return own[a].Date.After(own[b].Date) })

	h := History{
		Employee:           employee,
		Consultations:      own,
		TotalConsultations: len(own),
		TotalCost:          decimal.Zero,
		ByMonth:            make([]MonthCount, 0),
		Doctors:            make([]DoctorVisit, 0),
	}

	months := make(map[string]int)
	visits := make(map[uuid.UUID]int)

	for _, c := range own {
		if c.Cout.Valid {
			h.TotalCost = h.TotalCost.Add(c.Cout.Decimal)
		}
		if c.Repos.Accorde {
			h.ReposAccordes++
			h.TotalRestDays += c.Repos.Days()
		}

		month := c.Date.In(loc).Format("2006-01")
		if i, ok := months[month]; ok {
			h.ByMonth[i].Consultations++
		} else {
			months[month] = len(h.ByMonth)
			h.ByMonth = append(h.ByMonth, MonthCount{Month: month, Consultations: 1})
		}

		if i, ok := visits[c.MedecinID]; ok {
			h.Doctors[i].Consultations++
			continue
		}
		visit := DoctorVisit{MedecinID: c.MedecinID, Medecin: UnknownName, Consultations: 1}
		if d, err := dir.Doctor(c.MedecinID); err == nil {
			visit.Medecin = d.DisplayName()
			visit.Specialite = d.Specialite
		}
		visits[c.MedecinID] = len(h.Doctors)
		h.Doctors = append(h.Doctors, visit)
	}

	if len(own) > 0 {
		last := own[0].Date
		h.LastConsultation = &last
	}

	return h
}
