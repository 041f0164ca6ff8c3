package courses

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"sscacademy_backend/internals/features/lms/courses/model"
)

type LessonSeed struct {
	LessonTitle    string `json:"lesson_title"`
	LessonDuration int    `json:"lesson_duration"`
}

type ModuleSeed struct {
	ModuleTitle      string       `json:"module_title"`
	ModuleIsRequired bool         `json:"module_is_required"`
	Lessons          []LessonSeed `json:"lessons"`
}

type CourseSeed struct {
	CourseTitle      string       `json:"course_title"`
	CourseInstructor string       `json:"course_instructor"`
	CourseStatus     string       `json:"course_status"`
	CourseSkills     []string     `json:"course_skills"`
	Modules          []ModuleSeed `json:"modules"`
}

func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file course:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CourseSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CourseModel
		if err := db.Where("course_title = ?", data.CourseTitle).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Course '%s' sudah ada, dilewati.", data.CourseTitle)
			continue
		}

		course := model.CourseModel{
			CourseTitle:      data.CourseTitle,
			CourseInstructor: data.CourseInstructor,
			CourseStatus:     data.CourseStatus,
			CourseSkills:     data.CourseSkills,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Printf("❌ Gagal insert course '%s': %v", data.CourseTitle, err)
			continue
		}

		for mi, m := range data.Modules {
			module := model.CourseModuleModel{
				CourseModuleCourseID:   course.CourseID,
				CourseModuleTitle:      m.ModuleTitle,
				CourseModuleOrder:      mi,
				CourseModuleIsRequired: m.ModuleIsRequired,
			}
			if err := db.Create(&module).Error; err != nil {
				log.Printf("❌ Gagal insert module '%s': %v", m.ModuleTitle, err)
				continue
			}
			for li, l := range m.Lessons {
				lesson := model.LessonModel{
					LessonModuleID: module.CourseModuleID,
					LessonTitle:    l.LessonTitle,
					LessonOrder:    li,
					LessonDuration: l.LessonDuration,
				}
				if err := db.Create(&lesson).Error; err != nil {
					log.Printf("❌ Gagal insert lesson '%s': %v", l.LessonTitle, err)
				}
			}
		}
		log.Printf("✅ Course '%s' berhasil di-seed (%d modul).", data.CourseTitle, len(data.Modules))
	}
}
