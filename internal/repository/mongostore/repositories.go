package mongostore

import (
	"context"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// stamp mimics gorm's autoCreateTime/autoUpdateTime.
func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

type employeeRepository struct {
	c collection[employeeDoc]
}

var _ domainRepo.EmployeeRepository = (*employeeRepository)(nil)

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	docs, err := r.c.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertAll(docs, employeeDoc.toEntity)
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	doc, err := r.c.findOne(ctx, bson.M{"_id": id.String()})
	if err != nil || doc == nil {
		return nil, err
	}
	e, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	stamp(&employee.CreatedAt, &employee.UpdatedAt)
	return r.c.insert(ctx, newEmployeeDoc(employee))
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	stamp(&employee.CreatedAt, &employee.UpdatedAt)
	return r.c.replace(ctx, employee.ID.String(), newEmployeeDoc(employee))
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.c.delete(ctx, id.String())
}

type doctorRepository struct {
	c collection[doctorDoc]
}

var _ domainRepo.DoctorRepository = (*doctorRepository)(nil)

func (r *doctorRepository) List(ctx context.Context) ([]entity.Doctor, error) {
	docs, err := r.c.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertAll(docs, doctorDoc.toEntity)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doc, err := r.c.findOne(ctx, bson.M{"_id": id.String()})
	if err != nil || doc == nil {
		return nil, err
	}
	d, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &d, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	stamp(&doctor.CreatedAt, &doctor.UpdatedAt)
	return r.c.insert(ctx, newDoctorDoc(doctor))
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	stamp(&doctor.CreatedAt, &doctor.UpdatedAt)
	return r.c.replace(ctx, doctor.ID.String(), newDoctorDoc(doctor))
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.c.delete(ctx, id.String())
}

type consultationRepository struct {
	c collection[consultationDoc]
}

var _ domainRepo.ConsultationRepository = (*consultationRepository)(nil)

func (r *consultationRepository) List(ctx context.Context) ([]entity.Consultation, error) {
	docs, err := r.c.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertAll(docs, consultationDoc.toEntity)
}

func (r *consultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	doc, err := r.c.findOne(ctx, bson.M{"_id": id.String()})
	if err != nil || doc == nil {
		return nil, err
	}
	c, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &c, nil
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	stamp(&consultation.CreatedAt, &consultation.UpdatedAt)
	doc, err := newConsultationDoc(consultation)
	if err != nil {
		return apperror.Storage(err)
	}
	return r.c.insert(ctx, doc)
}

func (r *consultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	stamp(&consultation.CreatedAt, &consultation.UpdatedAt)
	doc, err := newConsultationDoc(consultation)
	if err != nil {
		return apperror.Storage(err)
	}
	return r.c.replace(ctx, doc.ID, doc)
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.c.delete(ctx, id.String())
}

type userRepository struct {
	c collection[userDoc]
}

var _ domainRepo.UserRepository = (*userRepository)(nil)

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	docs, err := r.c.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertAll(docs, userDoc.toEntity)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	doc, err := r.c.findOne(ctx, bson.M{"_id": id.String()})
	if err != nil || doc == nil {
		return nil, err
	}
	u, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &u, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return r.c.count(ctx, bson.M{"role": string(role)})
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	stamp(&user.CreatedAt, &user.UpdatedAt)
	return r.c.insert(ctx, newUserDoc(user))
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	stamp(&user.CreatedAt, &user.UpdatedAt)
	return r.c.replace(ctx, user.ID.String(), newUserDoc(user))
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.c.delete(ctx, id.String())
}

type credentialRepository struct {
	c collection[credentialDoc]
}

var _ domainRepo.CredentialRepository = (*credentialRepository)(nil)

func (r *credentialRepository) find(ctx context.Context, filter bson.M) (*entity.Credential, error) {
	doc, err := r.c.findOne(ctx, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	cred, err := doc.toEntity()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &cred, nil
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	return r.find(ctx, bson.M{"_id": userID.String()})
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	stamp(&credential.CreatedAt, &credential.UpdatedAt)
	return r.c.insert(ctx, newCredentialDoc(credential))
}

func (r *credentialRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	return r.c.updateFields(ctx, userID.String(), bson.M{"email": email, "updatedAt": time.Now().UTC()})
}

func (r *credentialRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.c.delete(ctx, userID.String())
	return err
}
