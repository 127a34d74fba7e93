package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	List(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	Create(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
