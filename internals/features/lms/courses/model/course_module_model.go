package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModuleModel struct {
	CourseModuleID       uuid.UUID `gorm:"type:uuid;primaryKey;column:course_module_id" json:"course_module_id"`
	CourseModuleCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:course_module_course_id" json:"course_module_course_id"`
	CourseModuleTitle    string    `gorm:"not null;column:course_module_title" json:"course_module_title"`
	CourseModuleOrder    int       `gorm:"not null;default:0;column:course_module_order" json:"course_module_order"`

	// Modul non-required (materi bonus) tidak menahan penerbitan sertifikat.
	CourseModuleIsRequired bool `gorm:"not null;default:true;column:course_module_is_required" json:"course_module_is_required"`

	CourseModuleCreatedAt time.Time `gorm:"column:course_module_created_at;autoCreateTime" json:"course_module_created_at"`
}

func (CourseModuleModel) TableName() string { return "course_modules" }

func (m *CourseModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseModuleID == uuid.Nil {
		m.CourseModuleID = uuid.New()
	}
	return nil
}
