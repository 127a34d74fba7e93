package usecase

import (
	"context"
	"time"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/reporting"
	"clinic-admin/internal/rules"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, id uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, id uuid.UUID) error
}

type consultationUsecase struct {
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	snapshots        *service.SnapshotService
	auditService     service.AuditService
	loc              *time.Location
}

func NewConsultationUsecase(
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	snapshots *service.SnapshotService,
	auditService service.AuditService,
	loc *time.Location,
) ConsultationUsecase {
	return &consultationUsecase{
		log:              log,
		consultationRepo: consultationRepo,
		snapshots:        snapshots,
		auditService:     auditService,
		loc:              loc,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation := &entity.Consultation{ID: uuid.New()}
	if err := u.prepare(req, consultation); err != nil {
		return nil, err
	}

	if err := u.consultationRepo.Create(ctx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), consultation)
	u.snapshots.NotifyChanged(ctx, entity.KindConsultation)

	return converter.ConsultationToResponse(consultation, u.loc), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ConsultationToResponse(consultation, u.loc), nil
}

func (u *consultationUsecase) UpdateConsultation(ctx context.Context, id uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	existing, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if err := u.prepare(req, &updated); err != nil {
		return nil, err
	}

	if err := u.consultationRepo.Update(ctx, &updated); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionConsultationUpdate, "consultation", id.String(), existing, updated)
	u.snapshots.NotifyChanged(ctx, entity.KindConsultation)

	return converter.ConsultationToResponse(&updated, u.loc), nil
}

func (u *consultationUsecase) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	existing, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	rows, err := u.consultationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete consultation: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrConsultationNotFound
	}

	_ = u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionConsultationDelete, "consultation", id.String(), existing)
	u.snapshots.NotifyChanged(ctx, entity.KindConsultation)

	return nil
}

// prepare applies req to c, validates it and copies the employee and doctor
// names from the latest snapshots.
func (u *consultationUsecase) prepare(req *dto.ConsultationRequest, c *entity.Consultation) error {
	if err := converter.ConsultationRequestToEntity(req, c, u.loc); err != nil {
		return ErrInvalidDateFormat
	}

	if err := rules.Consultation(c); err != nil {
		return err
	}
	c.Repos = c.Repos.Normalize()

	dir := reporting.NewDirectory(u.snapshots.Employees.Latest().Records, u.snapshots.Doctors.Latest().Records)

	employee, err := dir.Employee(c.EmployeID)
	if err != nil {
		return err
	}
	doctor, err := dir.Doctor(c.MedecinID)
	if err != nil {
		return err
	}

	c.EmployeNom = employee.FullName()
	c.EmployeMatricule = employee.Matricule
	c.MedecinNom = "Dr. " + doctor.Prenom + " " + doctor.Nom

	return nil
}

func (u *consultationUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation by ID: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	return consultation, nil
}
