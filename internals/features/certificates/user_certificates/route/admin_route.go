package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sscacademy_backend/internals/configs"
	"sscacademy_backend/internals/constants"
	"sscacademy_backend/internals/features/certificates/user_certificates/controller"
	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	authMiddleware "sscacademy_backend/internals/middlewares/auth"
)

// CertificateAdminRoutes: revoke + manual issue, hanya admin/owner.
func CertificateAdminRoutes(router fiber.Router, db *gorm.DB) {
	store := service.NewCertificateStore(db)
	issuance := service.NewIssuanceService(db, store, configs.CertOrgPrefix)
	adminCtrl := controller.NewAdminCertificateController(store, issuance)

	certs := router.Group("/certificates",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("certificate management"),
			constants.AdminAndAbove...,
		),
	)
	certs.Post("/issue", adminCtrl.Issue)
	certs.Post("/:id/revoke", adminCtrl.Revoke)
}
