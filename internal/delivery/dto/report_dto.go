package dto

import (
	"clinic-admin/internal/reporting"

	"github.com/shopspring/decimal"
)

// Request DTOs

type ReportRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
	Lieu string `json:"lieu" validate:"omitempty,oneof=Cabinet Port"`
}

// InvoiceRequest switches to manual mode when either amount is given.
type InvoiceRequest struct {
	ReportRequest
	Numero      string           `json:"numero" validate:"omitempty,max=50"`
	Honoraires  *decimal.Decimal `json:"honoraires"`
	Medicaments *decimal.Decimal `json:"medicaments"`
}

// Response DTOs

type ReportResponse struct {
	Periode  string                      `json:"periode"`
	Lieu     string                      `json:"lieu,omitempty"`
	Empty    bool                        `json:"empty"`
	Stats    reporting.Stats             `json:"stats"`
	Rows     []reporting.ExportRow       `json:"rows"`
	ByDoctor []reporting.DoctorBreakdown `json:"byDoctor"`
	ByMonth  []reporting.MonthBreakdown  `json:"byMonth"`
}

// DashboardResponse sums up the whole record store, regardless of period.
type DashboardResponse struct {
	TotalEmployees int             `json:"totalEmployees"`
	TotalDoctors   int             `json:"totalDoctors"`
	Stats          reporting.Stats `json:"stats"`
}

type HistoryResponse struct {
	Employee           EmployeeResponse        `json:"employee"`
	Consultations      []ConsultationResponse  `json:"consultations"`
	Pagination         *PageResponse           `json:"pagination,omitempty"`
	TotalConsultations int                     `json:"totalConsultations"`
	TotalCost          decimal.Decimal         `json:"totalCost"`
	TotalRestDays      int                     `json:"totalRestDays"`
	ReposAccordes      int                     `json:"reposAccordes"`
	ByMonth            []reporting.MonthCount  `json:"byMonth"`
	Doctors            []reporting.DoctorVisit `json:"doctors"`
	LastConsultation   *string                 `json:"lastConsultation,omitempty"`
}
