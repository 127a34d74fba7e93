package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the identity provider's record of a login. It is kept apart
// from User so that password material never reaches the record collections.
type Credential struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_credentials_email;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Credential) TableName() string {
	return "credentials"
}
