package dto

import (
	"time"

	"github.com/google/uuid"

	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	helper "sscacademy_backend/internals/helpers"
)

// CompletionEvent adalah sinyal dari collaborator progress bahwa seluruh
// konten wajib sebuah course sudah selesai. Boleh dikirim berulang untuk
// pasangan yang sama; engine yang menjamin idempotensi.
type CompletionEvent struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	CompletedAt time.Time `json:"completed_at"`
	Grade       *float64  `json:"grade,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// IssueRequest payload endpoint admin untuk injeksi CompletionEvent manual.
type IssueRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Grade    *float64  `json:"grade,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// CertificateResponse bentuk list/detail untuk pemilik sertifikat.
type CertificateResponse struct {
	CertificateID     uuid.UUID `json:"certificate_id"`
	CertificateNumber string    `json:"certificate_number"`
	CourseID          uuid.UUID `json:"course_id"`
	Status            string    `json:"status"`
	Grade             *float64  `json:"grade,omitempty"`
	IssuedAt          time.Time `json:"issued_at"`
	VerificationHash  string    `json:"verification_hash"`
}

func NewCertificateResponse(m *certModel.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateID:     m.CertificateID,
		CertificateNumber: m.CertificateNumber,
		CourseID:          m.CertificateCourseID,
		Status:            m.CertificateStatus,
		Grade:             m.CertificateGrade,
		IssuedAt:          m.CertificateIssuedAt,
		VerificationHash:  m.CertificateVerificationHash,
	}
}

// VerificationResult adalah proyeksi read-only untuk halaman verifikasi
// publik: minimal disclosure, hash hanya bentuk terpotong.
type VerificationResult struct {
	CertificateNumber string    `json:"certificate_number"`
	RecipientName     string    `json:"recipient_name"`
	Organization      string    `json:"organization,omitempty"`
	CourseTitle       string    `json:"course_title"`
	Instructor        string    `json:"instructor,omitempty"`
	IssuedAt          time.Time `json:"issued_at"`
	Grade             *float64  `json:"grade,omitempty"`
	Skills            []string  `json:"skills,omitempty"`
	Status            string    `json:"status"` // "active" | "revoked", selalu eksplisit
	VerificationHint  string    `json:"verification_hint"`
}

func NewVerificationHint(fullHash string) string {
	return helper.TruncateHash(fullHash)
}
