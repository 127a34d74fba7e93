package repository

import (
	"context"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialRepository is the identity provider's login store.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
	Create(ctx context.Context, credential *entity.Credential) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
