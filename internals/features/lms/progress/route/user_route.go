package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sscacademy_backend/internals/configs"
	certService "sscacademy_backend/internals/features/certificates/user_certificates/service"
	"sscacademy_backend/internals/features/lms/progress/controller"
	"sscacademy_backend/internals/features/lms/progress/service"
)

// ProgressUserRoutes: penyelesaian lesson oleh user login. Endpoint ini
// sekaligus trigger penerbitan sertifikat saat course mencapai 100%.
func ProgressUserRoutes(router fiber.Router, db *gorm.DB) {
	store := certService.NewCertificateStore(db)
	issuance := certService.NewIssuanceService(db, store, configs.CertOrgPrefix)
	progressCtrl := controller.NewProgressController(service.NewProgressService(db, issuance))

	progress := router.Group("/progress")
	progress.Post("/lessons/:lesson_id/complete", progressCtrl.CompleteLesson)
}
