package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	certService "sscacademy_backend/internals/features/certificates/user_certificates/service"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	progressModel "sscacademy_backend/internals/features/lms/progress/model"
)

// ProgressService menangani penyelesaian lesson dan jadi sumber
// CompletionEvent bagi issuance engine. Endpoint-nya boleh dipanggil
// berulang (retry, dua tab) — upsert progress + engine yang menjaga
// idempotensi ujung-ke-ujung.
type ProgressService struct {
	DB       *gorm.DB
	Issuance *certService.IssuanceService
}

func NewProgressService(db *gorm.DB, issuance *certService.IssuanceService) *ProgressService {
	return &ProgressService{DB: db, Issuance: issuance}
}

type CompletionOutcome struct {
	ProgressPercent float64
	Certificate     *certModel.CertificateModel // nil jika course belum tuntas
}

func (s *ProgressService) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID, timeSpent int) (*CompletionOutcome, error) {
	// 1) Resolve lesson → module → course
	var lesson courseModel.LessonModel
	if err := s.DB.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lesson not found")
		}
		return nil, err
	}
	var module courseModel.CourseModuleModel
	if err := s.DB.WithContext(ctx).
		Where("course_module_id = ?", lesson.LessonModuleID).
		First(&module).Error; err != nil {
		return nil, err
	}
	courseID := module.CourseModuleCourseID

	// 2) Upsert progress record (idempoten via uq_progress_user_lesson)
	now := time.Now()
	rec := progressModel.ProgressModel{
		ProgressUserID:      userID,
		ProgressCourseID:    courseID,
		ProgressModuleID:    module.CourseModuleID,
		ProgressLessonID:    lessonID,
		ProgressCompleted:   true,
		ProgressCompletedAt: &now,
		ProgressTimeSpent:   timeSpent,
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "progress_user_id"},
				{Name: "progress_lesson_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"progress_completed",
				"progress_completed_at",
			}),
		}).
		Create(&rec).Error; err != nil {
		return nil, err
	}

	// 3) Hitung ulang progress course & update enrollment
	percent, err := s.courseProgressPercent(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).
		Table("enrollments").
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"enrollment_progress":         percent,
			"enrollment_last_accessed_at": now,
		}).Error; err != nil {
		log.Printf("[ProgressService] enrollment update err (ignored): %v", err)
	}

	out := &CompletionOutcome{ProgressPercent: percent}

	// 4) Course tuntas → kirim CompletionEvent. Engine yang memutuskan
	// eligible/tidak dan menjamin at-most-once.
	if percent >= 100 {
		cert, err := s.Issuance.IssueOnCompletion(ctx, certDTO.CompletionEvent{
			UserID:      userID,
			CourseID:    courseID,
			CompletedAt: now,
		})
		if err != nil {
			return nil, err
		}
		out.Certificate = cert
	}

	return out, nil
}

func (s *ProgressService) courseProgressPercent(ctx context.Context, userID, courseID uuid.UUID) (float64, error) {
	var total, done int64
	if err := s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM lessons l
		JOIN course_modules m ON l.lesson_module_id = m.course_module_id
		WHERE m.course_module_course_id = ?
	`, courseID).Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	if err := s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM progress_records
		WHERE progress_user_id = ?
		  AND progress_course_id = ?
		  AND progress_completed = ?
	`, userID, courseID, true).Scan(&done).Error; err != nil {
		return 0, err
	}
	return float64(done) / float64(total) * 100, nil
}
