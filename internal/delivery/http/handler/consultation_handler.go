package handler

import (
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator     *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:     validator,
	}
}

// CreateConsultation handles consultation creation
// @Summary Create a consultation
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConsultationRequest true "Consultation"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /consultations [post]
func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsultationRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	consultation, err := h.consultationUsecase.CreateConsultation(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create consultation")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to get consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	var req dto.ConsultationRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	consultation, err := h.consultationUsecase.UpdateConsultation(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, "Failed to update consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}

func (h *ConsultationHandler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "consultation")
	if !ok {
		return
	}

	if err := h.consultationUsecase.DeleteConsultation(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation deleted successfully", nil)
}
