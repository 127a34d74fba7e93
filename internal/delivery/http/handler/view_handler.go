package handler

import (
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type ViewHandler struct {
	viewUsecase usecase.ViewUsecase
	validator   *validator.CustomValidator
}

func NewViewHandler(viewUsecase usecase.ViewUsecase, validator *validator.CustomValidator) *ViewHandler {
	return &ViewHandler{
		viewUsecase: viewUsecase,
		validator:   validator,
	}
}

// GetView returns the current page of a list view for the viewer's session
// @Summary Get list view
// @Tags Views
// @Security BearerAuth
// @Produce json
// @Param view path string true "employees, doctors, consultations or users"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /views/{view} [get]
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	view, err := h.viewUsecase.GetView(r.Context(), viewerID, mux.Vars(r)["view"])
	if err != nil {
		respondError(w, err, "Failed to load view")
		return
	}

	response.Success(w, http.StatusOK, "View retrieved successfully", view)
}

// UpdateSession changes the search term, facets or page of a view session
// @Summary Update view session
// @Tags Views
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param view path string true "View name"
// @Param request body dto.UpdateSessionRequest true "Session changes"
// @Success 200 {object} response.Response
// @Router /views/{view}/session [patch]
func (h *ViewHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateSessionRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	view, err := h.viewUsecase.UpdateSession(r.Context(), viewerID, mux.Vars(r)["view"], &req)
	if err != nil {
		respondError(w, err, "Failed to update view session")
		return
	}

	response.Success(w, http.StatusOK, "View session updated successfully", view)
}

// ClearSession removes the search term and every facet.
func (h *ViewHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	view, err := h.viewUsecase.ClearSession(r.Context(), viewerID, mux.Vars(r)["view"])
	if err != nil {
		respondError(w, err, "Failed to clear view session")
		return
	}

	response.Success(w, http.StatusOK, "View filters cleared", view)
}
