package handler

import (
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// Activity builds the activity report of a period
// @Summary Activity report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Period"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /reports/activity [post]
func (h *ReportHandler) Activity(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	report, err := h.reportUsecase.GenerateActivityReport(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to generate report")
		return
	}

	message := "Report generated successfully"
	if report.Empty {
		message = "No consultation found for this period"
	}
	response.Success(w, http.StatusOK, message, report)
}

// Invoice builds the invoice of a period
// @Summary Invoice
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.InvoiceRequest true "Period and optional manual amounts"
// @Success 200 {object} response.Response
// @Router /reports/invoice [post]
func (h *ReportHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	invoice, err := h.reportUsecase.GenerateInvoice(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to generate invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice generated successfully", invoice)
}

// Dashboard returns the collection totals
// @Summary Dashboard totals
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", h.reportUsecase.GetDashboard(r.Context()))
}
