package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CertificateStatusActive  = "active"
	CertificateStatusRevoked = "revoked"
)

// CertificateModel adalah credential milik core: sekali terbit, id / nomor /
// hash / issued_at tidak pernah berubah. Satu-satunya mutasi yang legal adalah
// transisi status active→revoked.
//
// Keunikan "satu sertifikat AKTIF per (user, course)" TIDAK dijaga lewat tag
// gorm, melainkan partial unique index di database.EnsureCertificateIndexes —
// index itulah otoritas anti-race untuk penerbitan.
type CertificateModel struct {
	CertificateID       uuid.UUID `gorm:"type:uuid;primaryKey;column:certificate_id" json:"certificate_id"`
	CertificateUserID   uuid.UUID `gorm:"type:uuid;not null;column:certificate_user_id" json:"certificate_user_id"`
	CertificateCourseID uuid.UUID `gorm:"type:uuid;not null;column:certificate_course_id" json:"certificate_course_id"`

	// Nomor human-displayable: "<ORG_PREFIX>-<uuid>", beda dari certificate_id.
	CertificateNumber string `gorm:"not null;column:certificate_number" json:"certificate_number"`

	// Digest sha256 lowercase-hex dari seed penerbitan; bukan bearer secret.
	CertificateVerificationHash string `gorm:"not null;column:certificate_verification_hash" json:"certificate_verification_hash"`

	// Snapshot nilai saat terbit; enrollment boleh berubah/hilang belakangan
	// tanpa menyentuh credential ini.
	CertificateGrade *float64 `gorm:"column:certificate_grade" json:"certificate_grade,omitempty"`

	CertificateStatus   string    `gorm:"not null;default:active;column:certificate_status" json:"certificate_status"`
	CertificateIssuedAt time.Time `gorm:"not null;column:certificate_issued_at" json:"certificate_issued_at"`

	CertificateCreatedAt time.Time  `gorm:"column:certificate_created_at;autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt *time.Time `gorm:"column:certificate_updated_at;autoUpdateTime" json:"certificate_updated_at,omitempty"`
}

func (CertificateModel) TableName() string { return "certificates" }

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	return nil
}
