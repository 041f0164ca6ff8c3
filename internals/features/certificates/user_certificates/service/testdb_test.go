package service

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "sscacademy_backend/internals/databases"
	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	enrollModel "sscacademy_backend/internals/features/lms/enrollments/model"
	progressModel "sscacademy_backend/internals/features/lms/progress/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
)

// openTestDB membuka SQLite file-based di TempDir dengan skema lengkap plus
// index yang sama dengan produksi (termasuk partial unique index sertifikat).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseModuleModel{},
		&courseModel.LessonModel{},
		&enrollModel.EnrollmentModel{},
		&progressModel.ProgressModel{},
		&certModel.CertificateModel{},
	))
	require.NoError(t, database.EnsureCertificateIndexes(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserName:         name,
		UserEmail:        name + "@example.test",
		UserOrganization: "LGU Tuguegarao",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCourse(t *testing.T, db *gorm.DB, title, status string) *courseModel.CourseModel {
	t.Helper()
	c := &courseModel.CourseModel{
		CourseTitle:      title,
		CourseInstructor: "Engr. R. Pagulayan",
		CourseStatus:     status,
		CourseSkills:     []string{"Data Literacy", "GIS Basics"},
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// seedModuleWithLessons satu modul + n lesson di bawahnya.
func seedModuleWithLessons(t *testing.T, db *gorm.DB, c *courseModel.CourseModel, required bool, n int) (*courseModel.CourseModuleModel, []courseModel.LessonModel) {
	t.Helper()
	m := &courseModel.CourseModuleModel{
		CourseModuleCourseID:   c.CourseID,
		CourseModuleTitle:      "Module",
		CourseModuleIsRequired: required,
	}
	require.NoError(t, db.Create(m).Error)

	lessons := make([]courseModel.LessonModel, 0, n)
	for i := 0; i < n; i++ {
		l := courseModel.LessonModel{
			LessonModuleID: m.CourseModuleID,
			LessonTitle:    "Lesson",
			LessonOrder:    i,
		}
		require.NoError(t, db.Create(&l).Error)
		lessons = append(lessons, l)
	}
	return m, lessons
}

func completionEventFor(userID, courseID uuid.UUID) certDTO.CompletionEvent {
	return certDTO.CompletionEvent{UserID: userID, CourseID: courseID}
}

func completeLessonRow(t *testing.T, db *gorm.DB, u *userModel.UserModel, c *courseModel.CourseModel, m *courseModel.CourseModuleModel, l *courseModel.LessonModel) {
	t.Helper()
	require.NoError(t, db.Create(&progressModel.ProgressModel{
		ProgressUserID:    u.UserID,
		ProgressCourseID:  c.CourseID,
		ProgressModuleID:  m.CourseModuleID,
		ProgressLessonID:  l.LessonID,
		ProgressCompleted: true,
	}).Error)
}
