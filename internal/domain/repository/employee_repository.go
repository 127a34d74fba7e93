package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// EmployeeRepository stores employees. List returns the collection ordered by
// creation time, which is the snapshot order every view relies on.
type EmployeeRepository interface {
	List(ctx context.Context) ([]entity.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
