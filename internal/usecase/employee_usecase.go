package usecase

import (
	"context"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/rules"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EmployeeUsecase interface {
	CreateEmployee(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type employeeUsecase struct {
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
	snapshots    *service.SnapshotService
	auditService service.AuditService
}

func NewEmployeeUsecase(
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	snapshots *service.SnapshotService,
	auditService service.AuditService,
) EmployeeUsecase {
	return &employeeUsecase{
		log:          log,
		employeeRepo: employeeRepo,
		snapshots:    snapshots,
		auditService: auditService,
	}
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := &entity.Employee{ID: uuid.New()}
	converter.EmployeeRequestToEntity(req, employee)

	if err := rules.Employee(u.snapshots.Employees.Latest().Records, employee); err != nil {
		return nil, err
	}

	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		if apperror.KindOf(err) == apperror.KindStorageFailure {
			u.log.Warnf("Failed to create employee: %+v", err)
		}
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionEmployeeCreate, "employee", employee.ID.String(), employee)
	u.snapshots.NotifyChanged(ctx, entity.KindEmployee)

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) GetEmployee(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) UpdateEmployee(ctx context.Context, id uuid.UUID, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	converter.EmployeeRequestToEntity(req, &updated)

	if err := rules.Employee(u.snapshots.Employees.Latest().Records, &updated); err != nil {
		return nil, err
	}

	if err := u.employeeRepo.Update(ctx, &updated); err != nil {
		if apperror.KindOf(err) == apperror.KindStorageFailure {
			u.log.Warnf("Failed to update employee: %+v", err)
		}
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionEmployeeUpdate, "employee", id.String(), existing, updated)
	u.snapshots.NotifyChanged(ctx, entity.KindEmployee)

	return converter.EmployeeToResponse(&updated), nil
}

func (u *employeeUsecase) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	existing, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	rows, err := u.employeeRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete employee: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}

	_ = u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionEmployeeDelete, "employee", id.String(), existing)
	u.snapshots.NotifyChanged(ctx, entity.KindEmployee)

	return nil
}

func (u *employeeUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := u.employeeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee by ID: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}
