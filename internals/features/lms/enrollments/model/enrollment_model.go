package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel read-only bagi core sertifikat kecuali field progress &
// last_accessed yang diupdate oleh flow penyelesaian lesson.
type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_user_course;column:enrollment_user_id" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_user_course;column:enrollment_course_id" json:"enrollment_course_id"`

	EnrollmentGrade    *float64 `gorm:"column:enrollment_grade" json:"enrollment_grade,omitempty"`       // persen 0..100
	EnrollmentProgress float64  `gorm:"not null;default:0;column:enrollment_progress" json:"enrollment_progress"` // persen 0..100

	EnrollmentEnrolledAt     time.Time  `gorm:"column:enrollment_enrolled_at;autoCreateTime" json:"enrollment_enrolled_at"`
	EnrollmentLastAccessedAt *time.Time `gorm:"column:enrollment_last_accessed_at" json:"enrollment_last_accessed_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
