package usecase

import (
	"context"
	"errors"

	"clinic-admin/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuditLogNotFound     = errors.New("audit log not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrForbiddenRole        = errors.New("role cannot be assigned by this user")
	ErrCannotDeleteSelf     = errors.New("users cannot delete their own account")
	ErrUnknownView          = errors.New("unknown view")
	ErrUnknownFacet         = errors.New("facet is not available on this view")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrAdminNotConfigured   = errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
)

// actorID returns the authenticated user for audit entries, nil when the
// call does not come from a request.
func actorID(ctx context.Context) *uuid.UUID {
	id, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &id
}
