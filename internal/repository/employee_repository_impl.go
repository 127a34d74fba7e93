package repository

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&employees).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return &employee, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return translateWriteError(r.db.WithContext(ctx).Create(employee).Error, "matricule")
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return translateWriteError(r.db.WithContext(ctx).Save(employee).Error, "matricule")
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Employee{})
	return result.RowsAffected, apperror.Storage(result.Error)
}
