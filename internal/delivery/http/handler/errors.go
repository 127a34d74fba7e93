package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// respondError maps usecase and domain errors to HTTP responses. Domain
// errors carry their kind and field in the error body.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		detail := dto.ErrorDetail{Kind: string(appErr.Kind), Field: appErr.Field}
		switch appErr.Kind {
		case apperror.KindDuplicateKey:
			response.Error(w, http.StatusConflict, appErr.Error(), detail)
		case apperror.KindMissingField, apperror.KindInvalidRange, apperror.KindPasswordMismatch:
			response.Error(w, http.StatusUnprocessableEntity, appErr.Error(), detail)
		case apperror.KindNotFound:
			response.Error(w, http.StatusNotFound, appErr.Error(), detail)
		default:
			response.InternalServerError(w, fallback)
		}
		return
	}

	switch err {
	case usecase.ErrEmployeeNotFound, usecase.ErrDoctorNotFound, usecase.ErrConsultationNotFound,
		usecase.ErrUserNotFound, usecase.ErrAuditLogNotFound, usecase.ErrUnknownView:
		response.NotFound(w, err.Error())
	case usecase.ErrForbiddenRole, usecase.ErrCannotDeleteSelf:
		response.Forbidden(w, err.Error())
	case usecase.ErrInvalidCredentials, usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
		response.Unauthorized(w, err.Error())
	case usecase.ErrUnknownFacet, usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

// decodeJSON reads and validates a request body, writing the error response
// itself when it fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

func pathID(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+what+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
