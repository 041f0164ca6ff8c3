package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sscacademy_backend/internals/configs"
	"sscacademy_backend/internals/features/certificates/user_certificates/controller"
	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	"sscacademy_backend/internals/middlewares"
)

// CertificatePublicRoutes: verifikasi + download, tanpa auth (atestasi publik
// memang untuk pihak ketiga), dibatasi rate limiter per-IP.
func CertificatePublicRoutes(router fiber.Router, db *gorm.DB) {
	store := service.NewCertificateStore(db)
	verification := service.NewVerificationService(db, store)
	renderer := service.NewCertificateRenderer(
		service.DirAssets{Dir: configs.CertAssetDir},
		configs.PublicBaseURL,
	)

	verifyCtrl := controller.NewVerifyController(verification)
	certCtrl := controller.NewUserCertificateController(db, store, renderer)

	certs := router.Group("/certificates")
	certs.Get("/verify/:id", middlewares.VerifyRateLimiter(), verifyCtrl.Verify)
	certs.Get("/:id/download", middlewares.DownloadRateLimiter(), certCtrl.Download)
}
