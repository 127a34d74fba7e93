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

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) domainRepo.ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) List(ctx context.Context) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&consultations).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return consultations, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return &consultation, nil
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	return apperror.Storage(r.db.WithContext(ctx).Create(consultation).Error)
}

func (r *consultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	return apperror.Storage(r.db.WithContext(ctx).Save(consultation).Error)
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Consultation{})
	return result.RowsAffected, apperror.Storage(result.Error)
}
