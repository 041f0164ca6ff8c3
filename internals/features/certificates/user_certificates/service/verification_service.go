package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
)

// CertificateLookup adalah irisan CertificateStore yang dibutuhkan verifikasi;
// dipisah sebagai interface supaya jalur "identifier tidak valid" bisa
// dibuktikan tidak pernah menyentuh store.
type CertificateLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*certModel.CertificateModel, error)
	GetByNumber(ctx context.Context, number string) (*certModel.CertificateModel, error)
}

// Bentuk identifier publik: uuid 36-char, atau nomor "<PREFIX>-<uuid>".
var (
	uuidShapeRe   = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	numberShapeRe = regexp.MustCompile(`^[A-Z0-9]{2,24}-[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// VerificationService menjawab "apakah ini sertifikat asli yang masih
// berlaku" untuk siapa pun, tanpa auth, tanpa pernah memutasi state.
type VerificationService struct {
	DB     *gorm.DB
	Lookup CertificateLookup
}

func NewVerificationService(db *gorm.DB, lookup CertificateLookup) *VerificationService {
	return &VerificationService{DB: db, Lookup: lookup}
}

// Verify: cek bentuk dulu (malformed → ErrInvalidIdentifier, store tidak
// disentuh), lookup, lalu proyeksi minimal-disclosure. Status revoked
// di-surface eksplisit, bukan disembunyikan jadi NotFound.
func (s *VerificationService) Verify(ctx context.Context, identifier string) (*certDTO.VerificationResult, error) {
	identifier = strings.TrimSpace(identifier)

	var (
		cert *certModel.CertificateModel
		err  error
	)
	switch {
	case uuidShapeRe.MatchString(identifier):
		id, parseErr := uuid.Parse(identifier)
		if parseErr != nil {
			return nil, ErrInvalidIdentifier
		}
		cert, err = s.Lookup.GetByID(ctx, id)
	case numberShapeRe.MatchString(identifier):
		cert, err = s.Lookup.GetByNumber(ctx, identifier)
	default:
		return nil, ErrInvalidIdentifier
	}
	if err != nil {
		return nil, err
	}

	return s.project(ctx, cert)
}

// project melengkapi record dengan lookup read-only user & course. Kontraknya
// typed: satu record opsional, bukan record-or-array seperti query layer lama.
func (s *VerificationService) project(ctx context.Context, cert *certModel.CertificateModel) (*certDTO.VerificationResult, error) {
	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", cert.CertificateUserID).
		First(&user).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var course courseModel.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id = ?", cert.CertificateCourseID).
		First(&course).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &certDTO.VerificationResult{
		CertificateNumber: cert.CertificateNumber,
		RecipientName:     user.UserName,
		Organization:      user.UserOrganization,
		CourseTitle:       course.CourseTitle,
		Instructor:        course.CourseInstructor,
		IssuedAt:          cert.CertificateIssuedAt,
		Grade:             cert.CertificateGrade,
		Skills:            []string(course.CourseSkills),
		Status:            cert.CertificateStatus,
		VerificationHint:  certDTO.NewVerificationHint(cert.CertificateVerificationHash),
	}, nil
}
