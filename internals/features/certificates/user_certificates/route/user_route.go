package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sscacademy_backend/internals/configs"
	"sscacademy_backend/internals/features/certificates/user_certificates/controller"
	"sscacademy_backend/internals/features/certificates/user_certificates/service"
)

// CertificateUserRoutes: listing & detail milik user login.
func CertificateUserRoutes(router fiber.Router, db *gorm.DB) {
	store := service.NewCertificateStore(db)
	renderer := service.NewCertificateRenderer(
		service.DirAssets{Dir: configs.CertAssetDir},
		configs.PublicBaseURL,
	)
	certCtrl := controller.NewUserCertificateController(db, store, renderer)

	certs := router.Group("/certificates")
	certs.Get("/", certCtrl.ListMine)
	certs.Get("/:id", certCtrl.GetMine)
}
