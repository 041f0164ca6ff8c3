package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
)

// CertificateStore adalah kontrak persistence untuk entitas sertifikat.
// Semua operasi menghormati context (timeout request di main.go ikut berlaku
// sampai ke statement DB).
type CertificateStore struct {
	DB *gorm.DB
}

func NewCertificateStore(db *gorm.DB) *CertificateStore {
	return &CertificateStore{DB: db}
}

// Create insert row baru. Pelanggaran partial unique index
// (user, course, status=active) diterjemahkan jadi ErrConflict — penentuan
// "sudah pernah terbit" SELALU di index, bukan di cek aplikasi.
func (s *CertificateStore) Create(ctx context.Context, cert *certModel.CertificateModel) error {
	if err := s.DB.WithContext(ctx).Create(cert).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		log.Printf("[CertificateStore] ERROR create: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *CertificateStore) GetByID(ctx context.Context, id uuid.UUID) (*certModel.CertificateModel, error) {
	var cert certModel.CertificateModel
	err := s.DB.WithContext(ctx).
		Where("certificate_id = ?", id).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &cert, nil
}

func (s *CertificateStore) GetByNumber(ctx context.Context, number string) (*certModel.CertificateModel, error) {
	var cert certModel.CertificateModel
	err := s.DB.WithContext(ctx).
		Where("certificate_number = ?", number).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &cert, nil
}

// GetActiveByUserAndCourse mengembalikan sertifikat AKTIF untuk pasangan
// (user, course). Record revoked tidak dihitung.
func (s *CertificateStore) GetActiveByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*certModel.CertificateModel, error) {
	var cert certModel.CertificateModel
	err := s.DB.WithContext(ctx).
		Where(`
			certificate_user_id = ?
			AND certificate_course_id = ?
			AND certificate_status = ?
		`, userID, courseID, certModel.CertificateStatusActive).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &cert, nil
}

// ListByUser semua sertifikat milik user (termasuk revoked — revocation tidak
// menghapus record), terbaru dulu.
func (s *CertificateStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]certModel.CertificateModel, error) {
	var certs []certModel.CertificateModel
	err := s.DB.WithContext(ctx).
		Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return certs, nil
}

// Revoke transisi active→revoked. Idempoten: revoke record yang sudah
// revoked adalah no-op sukses. Tidak ada jalan balik (un-revoke).
func (s *CertificateStore) Revoke(ctx context.Context, id uuid.UUID) (*certModel.CertificateModel, error) {
	cert, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cert.CertificateStatus == certModel.CertificateStatusRevoked {
		return cert, nil
	}

	now := time.Now()
	res := s.DB.WithContext(ctx).
		Model(&certModel.CertificateModel{}).
		Where("certificate_id = ?", id).
		Updates(map[string]interface{}{
			"certificate_status":     certModel.CertificateStatusRevoked,
			"certificate_updated_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, res.Error)
	}

	cert.CertificateStatus = certModel.CertificateStatusRevoked
	cert.CertificateUpdatedAt = &now
	log.Printf("[CertificateStore] revoked certificate_id=%s number=%s", cert.CertificateID, cert.CertificateNumber)
	return cert, nil
}

// isDuplicateKey mengenali pelanggaran unique constraint lintas driver.
// TranslateError sudah memetakan ke gorm.ErrDuplicatedKey; fallback string
// untuk koneksi yang dibuka tanpa opsi itu.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
