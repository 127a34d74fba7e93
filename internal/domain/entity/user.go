package entity

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors an account issued by the identity provider. Its ID is the
// credential's user id.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	Nom       string    `gorm:"type:varchar(100);not null" json:"nom"`
	Prenom    string    `gorm:"type:varchar(100);not null" json:"prenom"`
	Role      UserRole  `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (User) RecordKind() Kind { return KindUser }

func (u User) RecordID() uuid.UUID { return u.ID }

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
