package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	helper "sscacademy_backend/internals/helpers"
)

// IssuanceService mengorkestrasi penerbitan sekali-saja saat learner memenuhi
// semua syarat penyelesaian course.
//
// State machine per (user, course):
//
//	NoCertificate --CompletionEvent(eligible)--> Issued
//	Issued --admin revoke--> Revoked (terminal)
//
// Conflict saat create berarti "sudah ada yang menerbitkan" (event duplikat
// atau dua tab menyelesaikan lesson terakhir bersamaan): attempt kita dibuang
// dan record existing yang jadi otoritas.
type IssuanceService struct {
	DB        *gorm.DB
	Store     *CertificateStore
	OrgPrefix string
}

func NewIssuanceService(db *gorm.DB, store *CertificateStore, orgPrefix string) *IssuanceService {
	return &IssuanceService{DB: db, Store: store, OrgPrefix: orgPrefix}
}

// IssueOnCompletion memproses satu CompletionEvent.
//
// Return:
//   - (cert, nil)  → terbit sekarang ATAU sudah pernah terbit (idempoten)
//   - (nil, nil)   → belum eligible; BUKAN error, dan tidak ada record
//     parsial/draft yang dipersist
//   - (nil, err)   → store/collaborator bermasalah
func (s *IssuanceService) IssueOnCompletion(ctx context.Context, ev certDTO.CompletionEvent) (*certModel.CertificateModel, error) {
	// 1) Course harus ada dan aktif
	var course courseModel.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id = ?", ev.CourseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[IssuanceService] course %s not found, skip", ev.CourseID)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if course.CourseStatus != courseModel.CourseStatusActive {
		log.Printf("[IssuanceService] course %s status=%s, not eligible", ev.CourseID, course.CourseStatus)
		return nil, nil
	}

	// 2) Semua modul wajib harus tuntas
	eligible, err := s.requiredModulesComplete(ctx, ev)
	if err != nil {
		return nil, err
	}
	if !eligible {
		log.Printf("[IssuanceService] user=%s course=%s belum memenuhi semua modul wajib", ev.UserID, ev.CourseID)
		return nil, nil
	}

	// 3) Build kandidat & attempt create. Seed hash pakai nanosecond clock
	// supaya attempt ulang untuk pasangan yang sama tidak pernah
	// menghasilkan hash identik.
	issuedAt := ev.CompletedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	grade := ev.Grade
	if grade == nil {
		grade = s.enrollmentGrade(ctx, ev)
	}

	cand := &certModel.CertificateModel{
		CertificateUserID:           ev.UserID,
		CertificateCourseID:         ev.CourseID,
		CertificateNumber:           helper.NewCertificateNumber(s.OrgPrefix),
		CertificateVerificationHash: helper.GenerateVerificationHash(helper.VerificationSeed(ev.UserID, ev.CourseID, time.Now())),
		CertificateGrade:            grade,
		CertificateStatus:           certModel.CertificateStatusActive,
		CertificateIssuedAt:         issuedAt,
	}

	err = s.Store.Create(ctx, cand)
	if err == nil {
		log.Printf("[IssuanceService] issued certificate_id=%s number=%s user=%s course=%s",
			cand.CertificateID, cand.CertificateNumber, ev.UserID, ev.CourseID)
		return cand, nil
	}
	if !errors.Is(err, ErrConflict) {
		return nil, err
	}

	// 4) Conflict → record existing yang otoritatif; caller melihat issuance
	// sebagai idempoten.
	existing, getErr := s.Store.GetActiveByUserAndCourse(ctx, ev.UserID, ev.CourseID)
	if getErr == nil {
		log.Printf("[IssuanceService] duplicate attempt user=%s course=%s, returning existing %s",
			ev.UserID, ev.CourseID, existing.CertificateID)
		return existing, nil
	}
	if errors.Is(getErr, ErrNotFound) {
		// Jendela sempit: row yang menang barusan di-revoke. Sekali retry;
		// conflict kedua berarti pihak lain sempat menerbitkan lagi di sela
		// dua statement — record merekalah yang otoritatif, bukan error.
		retryErr := s.Store.Create(ctx, cand)
		if retryErr == nil {
			return cand, nil
		}
		if errors.Is(retryErr, ErrConflict) {
			return s.Store.GetActiveByUserAndCourse(ctx, ev.UserID, ev.CourseID)
		}
		return nil, retryErr
	}
	return nil, getErr
}

// requiredModulesComplete: setiap modul wajib course harus punya lesson dan
// semua lesson-nya ter-cover progress record completed milik user tsb.
func (s *IssuanceService) requiredModulesComplete(ctx context.Context, ev certDTO.CompletionEvent) (bool, error) {
	var incomplete int64
	err := s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM course_modules m
		WHERE m.course_module_course_id = ?
		  AND m.course_module_is_required = ?
		  AND (
		    NOT EXISTS (
		      SELECT 1 FROM lessons l
		      WHERE l.lesson_module_id = m.course_module_id
		    )
		    OR EXISTS (
		      SELECT 1 FROM lessons l
		      WHERE l.lesson_module_id = m.course_module_id
		        AND NOT EXISTS (
		          SELECT 1 FROM progress_records p
		          WHERE p.progress_lesson_id = l.lesson_id
		            AND p.progress_user_id = ?
		            AND p.progress_completed = ?
		        )
		    )
		  )
	`, ev.CourseID, true, ev.UserID, true).Scan(&incomplete).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return incomplete == 0, nil
}

// enrollmentGrade snapshot nilai dari enrollment kalau event tidak membawa
// grade sendiri; nil kalau enrollment tidak ada / belum dinilai.
func (s *IssuanceService) enrollmentGrade(ctx context.Context, ev certDTO.CompletionEvent) *float64 {
	var grade *float64
	err := s.DB.WithContext(ctx).Raw(`
		SELECT enrollment_grade FROM enrollments
		WHERE enrollment_user_id = ? AND enrollment_course_id = ?
	`, ev.UserID, ev.CourseID).Scan(&grade).Error
	if err != nil {
		log.Printf("[IssuanceService] enrollment grade lookup err (ignored): %v", err)
		return nil
	}
	return grade
}
