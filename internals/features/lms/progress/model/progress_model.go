package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressModel satu baris per (user, lesson). Unique index membuat
// penyelesaian lesson idempoten terhadap re-submit (dua tab, retry, dsb).
type ProgressModel struct {
	ProgressID       uuid.UUID `gorm:"type:uuid;primaryKey;column:progress_id" json:"progress_id"`
	ProgressUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_lesson;column:progress_user_id" json:"progress_user_id"`
	ProgressCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:progress_course_id" json:"progress_course_id"`
	ProgressModuleID uuid.UUID `gorm:"type:uuid;not null;column:progress_module_id" json:"progress_module_id"`
	ProgressLessonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_lesson;column:progress_lesson_id" json:"progress_lesson_id"`

	ProgressCompleted   bool       `gorm:"not null;default:false;column:progress_completed" json:"progress_completed"`
	ProgressCompletedAt *time.Time `gorm:"column:progress_completed_at" json:"progress_completed_at,omitempty"`
	ProgressTimeSpent   int        `gorm:"not null;default:0;column:progress_time_spent" json:"progress_time_spent"` // menit

	ProgressCreatedAt time.Time `gorm:"column:progress_created_at;autoCreateTime" json:"progress_created_at"`
}

func (ProgressModel) TableName() string { return "progress_records" }

func (m *ProgressModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProgressID == uuid.Nil {
		m.ProgressID = uuid.New()
	}
	return nil
}
