package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CourseStatusActive   = "active"
	CourseStatusDraft    = "draft"
	CourseStatusArchived = "archived"
)

type CourseModel struct {
	CourseID         uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`
	CourseTitle      string    `gorm:"not null;column:course_title" json:"course_title"`
	CourseInstructor string    `gorm:"column:course_instructor" json:"course_instructor"`
	CourseStatus     string    `gorm:"not null;default:active;column:course_status" json:"course_status"`

	// Skills ditampilkan di sertifikat; disimpan sebagai JSON array supaya
	// skemanya sama di PostgreSQL dan SQLite (test driver).
	CourseSkills datatypes.JSONSlice[string] `gorm:"column:course_skills" json:"course_skills,omitempty"`

	CourseCreatedAt time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
