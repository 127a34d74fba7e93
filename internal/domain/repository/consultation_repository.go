package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type ConsultationRepository interface {
	List(ctx context.Context) ([]entity.Consultation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error)
	Create(ctx context.Context, consultation *entity.Consultation) error
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
