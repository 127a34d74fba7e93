package repository

import (
	"context"

	"clinic-admin/internal/query"

	"github.com/google/uuid"
)

// ViewSessionRepository keeps one session per viewer and view. Get returns
// nil without error when nothing is stored.
type ViewSessionRepository interface {
	Get(ctx context.Context, viewerID uuid.UUID, view string) (*query.Session, error)
	Save(ctx context.Context, viewerID uuid.UUID, session *query.Session) error
	Delete(ctx context.Context, viewerID uuid.UUID, view string) error
}
