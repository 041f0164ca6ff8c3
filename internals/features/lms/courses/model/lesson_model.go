package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID       uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_id" json:"lesson_id"`
	LessonModuleID uuid.UUID `gorm:"type:uuid;not null;index;column:lesson_module_id" json:"lesson_module_id"`
	LessonTitle    string    `gorm:"not null;column:lesson_title" json:"lesson_title"`
	LessonOrder    int       `gorm:"not null;default:0;column:lesson_order" json:"lesson_order"`
	LessonDuration int       `gorm:"not null;default:0;column:lesson_duration" json:"lesson_duration"` // menit

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
