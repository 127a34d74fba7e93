package converter

import (
	"time"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/query"
	"clinic-admin/internal/reporting"
)

func ReportToResponse(r reporting.Report) *dto.ReportResponse {
	rows := r.ExportRows
	if rows == nil {
		rows = []reporting.ExportRow{}
	}

	return &dto.ReportResponse{
		Periode:  r.Period.Label(),
		Lieu:     string(r.Lieu),
		Empty:    r.Empty(),
		Stats:    r.Stats,
		Rows:     rows,
		ByDoctor: r.ByDoctor,
		ByMonth:  r.ByMonth,
	}
}

// HistoryToResponse renders h. With a page, only that page of consultations
// is included; without one the whole history is.
func HistoryToResponse(h reporting.History, page *query.Page[entity.Consultation], loc *time.Location) *dto.HistoryResponse {
	resp := &dto.HistoryResponse{
		Employee:           *EmployeeToResponse(&h.Employee),
		Consultations:      ConsultationsToResponses(h.Consultations, loc),
		TotalConsultations: h.TotalConsultations,
		TotalCost:          h.TotalCost,
		TotalRestDays:      h.TotalRestDays,
		ReposAccordes:      h.ReposAccordes,
		ByMonth:            h.ByMonth,
		Doctors:            h.Doctors,
	}

	if page != nil {
		resp.Consultations = ConsultationsToResponses(page.Items, loc)
		p := PageToResponse(*page)
		resp.Pagination = &p
	}

	if h.LastConsultation != nil {
		last := FormatDate(*h.LastConsultation, loc)
		resp.LastConsultation = &last
	}

	return resp
}
