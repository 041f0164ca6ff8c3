package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel adalah lookup read-only bagi core sertifikat; penulisan data user
// (registrasi, profil, session) ada di layanan lain.
type UserModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName         string    `gorm:"not null;column:user_name" json:"user_name"`
	UserEmail        string    `gorm:"uniqueIndex;not null;column:user_email" json:"user_email"`
	UserOrganization string    `gorm:"column:user_organization" json:"user_organization"`
	UserType         string    `gorm:"column:user_type" json:"user_type"`
	UserRegion       string    `gorm:"column:user_region" json:"user_region"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
