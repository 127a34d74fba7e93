// Package reporting turns a consultation snapshot into period statistics,
// export rows and invoices. It performs no I/O.
package reporting

import (
	"fmt"
	"sort"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownName replaces a name whose record is missing from the snapshot.
const UnknownName = "Inconnu"

type Stats struct {
	TotalConsultations int             `json:"totalConsultations"`
	ReposAccordes      int             `json:"reposAccordes"`
	TotalRestDays      int             `json:"totalRestDays"`
	UniqueEmployees    int             `json:"uniqueEmployees"`
	UniqueDoctors      int             `json:"uniqueDoctors"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	AverageCost        decimal.Decimal `json:"averageCost"`
}

// ExportRow is the flattened consultation handed to document generation.
type ExportRow struct {
	ConsultationID uuid.UUID           `json:"consultationId"`
	Date           time.Time           `json:"date"`
	Employe        string              `json:"employe"`
	Matricule      string              `json:"matricule"`
	Medecin        string              `json:"medecin"`
	Lieu           entity.Lieu         `json:"lieu"`
	Motif          string              `json:"motif"`
	Cout           decimal.NullDecimal `json:"cout"`
	Repos          string              `json:"repos"`
}

type DoctorBreakdown struct {
	MedecinID     uuid.UUID       `json:"medecinId"`
	Medecin       string          `json:"medecin"`
	Consultations int             `json:"consultations"`
	Revenue       decimal.Decimal `json:"revenue"`
	RestDays      int             `json:"restDays"`
}

type MonthBreakdown struct {
	Month         string          `json:"month"`
	Consultations int             `json:"consultations"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type Report struct {
	Period     Interval
	Lieu       entity.Lieu
	Matched    []entity.Consultation
	Stats      Stats
	ExportRows []ExportRow
	ByDoctor   []DoctorBreakdown
	ByMonth    []MonthBreakdown
}

// Empty reports a period without any consultation.
func (r Report) Empty() bool {
	return r.Stats.TotalConsultations == 0
}

// Directory resolves employee and doctor ids against the current snapshots.
type Directory struct {
	employees map[uuid.UUID]entity.Employee
	doctors   map[uuid.UUID]entity.Doctor
}

func NewDirectory(employees []entity.Employee, doctors []entity.Doctor) *Directory {
	d := &Directory{
		employees: make(map[uuid.UUID]entity.Employee, len(employees)),
		doctors:   make(map[uuid.UUID]entity.Doctor, len(doctors)),
	}
	for _, e := range employees {
		d.employees[e.ID] = e
	}
	for _, doc := range doctors {
		d.doctors[doc.ID] = doc
	}
	return d
}

func (d *Directory) Employee(id uuid.UUID) (entity.Employee, error) {
	e, ok := d.employees[id]
	if !ok {
		return entity.Employee{}, apperror.NotFound("employeId", "employee not found")
	}
	return e, nil
}

func (d *Directory) Doctor(id uuid.UUID) (entity.Doctor, error) {
	doc, ok := d.doctors[id]
	if !ok {
		return entity.Doctor{}, apperror.NotFound("medecinId", "doctor not found")
	}
	return doc, nil
}

// BuildReport selects the consultations of the interval, optionally for one
// lieu, and aggregates them. An empty lieu selects every place.
func BuildReport(consultations []entity.Consultation, employees []entity.Employee, doctors []entity.Doctor, interval Interval, lieu entity.Lieu) Report {
	matched := Select(consultations, interval, lieu)
	dir := NewDirectory(employees, doctors)

	return Report{
		Period:     interval,
		Lieu:       lieu,
		Matched:    matched,
		Stats:      ComputeStats(matched),
		ExportRows: ExportRows(matched, dir),
		ByDoctor:   ByDoctor(matched, dir),
		ByMonth:    ByMonth(matched, interval.location()),
	}
}

// Select keeps input order.
func Select(consultations []entity.Consultation, interval Interval, lieu entity.Lieu) []entity.Consultation {
	matched := make([]entity.Consultation, 0)
	for _, c := range consultations {
		if !interval.Contains(c.Date) {
			continue
		}
		if lieu != "" && c.Lieu != lieu {
			continue
		}
		matched = append(matched, c)
	}
	return matched
}

func ComputeStats(matched []entity.Consultation) Stats {
	stats := Stats{
		TotalConsultations: len(matched),
		TotalRevenue:       decimal.Zero,
		AverageCost:        decimal.Zero,
	}

	employees := make(map[uuid.UUID]struct{})
	doctors := make(map[uuid.UUID]struct{})

	for _, c := range matched {
		if c.Repos.Accorde {
			stats.ReposAccordes++
			stats.TotalRestDays += c.Repos.Days()
		}
		if c.Cout.Valid {
			stats.TotalRevenue = stats.TotalRevenue.Add(c.Cout.Decimal)
		}
		employees[c.EmployeID] = struct{}{}
		doctors[c.MedecinID] = struct{}{}
	}

	stats.UniqueEmployees = len(employees)
	stats.UniqueDoctors = len(doctors)
	if stats.TotalConsultations > 0 {
		stats.AverageCost = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalConsultations)))
	}

	return stats
}

// ExportRows resolves names through dir; a missing record yields UnknownName.
func ExportRows(matched []entity.Consultation, dir *Directory) []ExportRow {
	rows := make([]ExportRow, 0, len(matched))
	for _, c := range matched {
		employe := UnknownName
		if e, err := dir.Employee(c.EmployeID); err == nil {
			employe = e.FullName()
		}
		medecin := UnknownName
		if d, err := dir.Doctor(c.MedecinID); err == nil {
			medecin = d.Nom
		}

		rows = append(rows, ExportRow{
			ConsultationID: c.ID,
			Date:           c.Date,
			Employe:        employe,
			Matricule:      c.EmployeMatricule,
			Medecin:        medecin,
			Lieu:           c.Lieu,
			Motif:          c.Motif,
			Cout:           c.Cout,
			Repos:          restLabel(c.Repos),
		})
	}
	return rows
}

func restLabel(r entity.RestGrant) string {
	if !r.Accorde {
		return "Non"
	}
	return fmt.Sprintf("%d jour(s)", r.Days())
}

// ByDoctor is sorted by consultation count, then doctor name.
func ByDoctor(matched []entity.Consultation, dir *Directory) []DoctorBreakdown {
	index := make(map[uuid.UUID]int)
	out := make([]DoctorBreakdown, 0)

	for _, c := range matched {
		i, ok := index[c.MedecinID]
		if !ok {
			name := UnknownName
			if d, err := dir.Doctor(c.MedecinID); err == nil {
				name = d.DisplayName()
			}
			out = append(out, DoctorBreakdown{MedecinID: c.MedecinID, Medecin: name, Revenue: decimal.Zero})
			i = len(out) - 1
			index[c.MedecinID] = i
		}
		out[i].Consultations++
		out[i].RestDays += c.Repos.Days()
		if c.Cout.Valid {
			out[i].Revenue = out[i].Revenue.Add(c.Cout.Decimal)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Consultations != out[b].Consultations {
			return out[a].Consultations > out[b].Consultations
		}
		return out[a].Medecin < out[b].Medecin
	})

	return out
}

// ByMonth groups by "YYYY-MM" in ascending order.
func ByMonth(matched []entity.Consultation, loc *time.Location) []MonthBreakdown {
	if loc == nil {
		loc = time.UTC
	}
	index := make(map[string]int)
	out := make([]MonthBreakdown, 0)

	for _, c := range matched {
		month := c.Date.In(loc).Format("2006-01")
		i, ok := index[month]
		if !ok {
			out = append(out, MonthBreakdown{Month: month, Revenue: decimal.Zero})
			i = len(out) - 1
			index[month] = i
		}
		out[i].Consultations++
		if c.Cout.Valid {
			out[i].Revenue = out[i].Revenue.Add(c.Cout.Decimal)
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Month < out[b].Month })

	return out
}
