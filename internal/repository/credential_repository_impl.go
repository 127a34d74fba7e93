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

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) domainRepo.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return &credential, nil
}

func (r *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return &credential, nil
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return translateWriteError(r.db.WithContext(ctx).Create(credential).Error, "email")
}

func (r *credentialRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Credential{}).
		Where("user_id = ?", userID).
		Update("email", email).Error
	return translateWriteError(err, "email")
}

func (r *credentialRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return apperror.Storage(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Credential{}).Error)
}
