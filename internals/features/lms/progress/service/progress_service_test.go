package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "sscacademy_backend/internals/databases"
	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	certService "sscacademy_backend/internals/features/certificates/user_certificates/service"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	enrollModel "sscacademy_backend/internals/features/lms/enrollments/model"
	progressModel "sscacademy_backend/internals/features/lms/progress/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
)

type fixture struct {
	db      *gorm.DB
	svc     *ProgressService
	user    *userModel.UserModel
	course  *courseModel.CourseModel
	lessons []courseModel.LessonModel
}

// newFixture: satu course aktif, satu modul wajib berisi dua lesson, satu
// learner ter-enroll.
func newFixture(t *testing.T) *fixture {
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

	user := &userModel.UserModel{UserName: "Maria Santos", UserEmail: "maria@example.test"}
	require.NoError(t, db.Create(user).Error)

	course := &courseModel.CourseModel{
		CourseTitle:  "Smart Water Management",
		CourseStatus: courseModel.CourseStatusActive,
	}
	require.NoError(t, db.Create(course).Error)

	mod := &courseModel.CourseModuleModel{
		CourseModuleCourseID:   course.CourseID,
		CourseModuleTitle:      "Fundamentals",
		CourseModuleIsRequired: true,
	}
	require.NoError(t, db.Create(mod).Error)

	lessons := make([]courseModel.LessonModel, 2)
	for i := range lessons {
		lessons[i] = courseModel.LessonModel{
			LessonModuleID: mod.CourseModuleID,
			LessonTitle:    "Lesson",
			LessonOrder:    i,
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}

	grade := 90.0
	require.NoError(t, db.Create(&enrollModel.EnrollmentModel{
		EnrollmentUserID:   user.UserID,
		EnrollmentCourseID: course.CourseID,
		EnrollmentGrade:    &grade,
	}).Error)

	store := certService.NewCertificateStore(db)
	issuance := certService.NewIssuanceService(db, store, "DOST02SSCP")
	return &fixture{
		db:      db,
		svc:     NewProgressService(db, issuance),
		user:    user,
		course:  course,
		lessons: lessons,
	}
}

func TestCompleteLesson_ProgressThenCertificate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// lesson pertama: 50%, belum ada sertifikat
	out, err := f.svc.CompleteLesson(ctx, f.user.UserID, f.lessons[0].LessonID, 10)
	require.NoError(t, err)
	assert.InDelta(t, 50, out.ProgressPercent, 0.01)
	assert.Nil(t, out.Certificate)

	// enrollment progress ikut ter-update
	var enr enrollModel.EnrollmentModel
	require.NoError(t, f.db.Where("enrollment_user_id = ?", f.user.UserID).First(&enr).Error)
	assert.InDelta(t, 50, enr.EnrollmentProgress, 0.01)
	assert.NotNil(t, enr.EnrollmentLastAccessedAt)

	// lesson terakhir: 100% → sertifikat terbit dengan grade snapshot
	out, err = f.svc.CompleteLesson(ctx, f.user.UserID, f.lessons[1].LessonID, 15)
	require.NoError(t, err)
	assert.InDelta(t, 100, out.ProgressPercent, 0.01)
	require.NotNil(t, out.Certificate)
	assert.Equal(t, certModel.CertificateStatusActive, out.Certificate.CertificateStatus)
	require.NotNil(t, out.Certificate.CertificateGrade)
	assert.Equal(t, 90.0, *out.Certificate.CertificateGrade)
}

func TestCompleteLesson_RetryIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CompleteLesson(ctx, f.user.UserID, f.lessons[0].LessonID, 0)
	require.NoError(t, err)
	first, err := f.svc.CompleteLesson(ctx, f.user.UserID, f.lessons[1].LessonID, 0)
	require.NoError(t, err)
	require.NotNil(t, first.Certificate)

	// retry lesson terakhir (dua tab / resubmit): progress tidak dobel,
	// sertifikat yang sama yang kembali
	again, err := f.svc.CompleteLesson(ctx, f.user.UserID, f.lessons[1].LessonID, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100, again.ProgressPercent, 0.01)
	require.NotNil(t, again.Certificate)
	assert.Equal(t, first.Certificate.CertificateID, again.Certificate.CertificateID)

	var progressRows int64
	require.NoError(t, f.db.Model(&progressModel.ProgressModel{}).
		Where("progress_user_id = ?", f.user.UserID).
		Count(&progressRows).Error)
	assert.EqualValues(t, 2, progressRows)

	var certRows int64
	require.NoError(t, f.db.Model(&certModel.CertificateModel{}).Count(&certRows).Error)
	assert.EqualValues(t, 1, certRows)
}

func TestCompleteLesson_UnknownLesson(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CompleteLesson(context.Background(), f.user.UserID, uuid.New(), 0)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
