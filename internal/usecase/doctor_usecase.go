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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo repository.DoctorRepository
	snapshots    *service.SnapshotService
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	snapshots *service.SnapshotService,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo: doctorRepo,
		snapshots:    snapshots,
		auditService: auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{ID: uuid.New()}
	converter.DoctorRequestToEntity(req, doctor)

	if err := rules.Doctor(u.snapshots.Doctors.Latest().Records, doctor); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if apperror.KindOf(err) == apperror.KindStorageFailure {
			u.log.Warnf("Failed to create doctor: %+v", err)
		}
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), doctor)
	u.snapshots.NotifyChanged(ctx, entity.KindDoctor)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	existing, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	converter.DoctorRequestToEntity(req, &updated)

	if err := rules.Doctor(u.snapshots.Doctors.Latest().Records, &updated); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Update(ctx, &updated); err != nil {
		if apperror.KindOf(err) == apperror.KindStorageFailure {
			u.log.Warnf("Failed to update doctor: %+v", err)
		}
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionDoctorUpdate, "doctor", id.String(), existing, updated)
	u.snapshots.NotifyChanged(ctx, entity.KindDoctor)

	return converter.DoctorToResponse(&updated), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	existing, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	rows, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	_ = u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionDoctorDelete, "doctor", id.String(), existing)
	u.snapshots.NotifyChanged(ctx, entity.KindDoctor)

	return nil
}

func (u *doctorUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
