// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sscacademy_backend/internals/configs"
	certRoute "sscacademy_backend/internals/features/certificates/user_certificates/route"
	progressRoute "sscacademy_backend/internals/features/lms/progress/route"
	authMiddleware "sscacademy_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (verifikasi & download sertifikat untuk pihak ketiga)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/p")

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== ADMIN =====================
	// Role check dilakukan di level feature route (OnlyRoles), di sini cukup JWT.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: false,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Certificate routes...")
	certRoute.CertificatePublicRoutes(public, db)
	certRoute.CertificateUserRoutes(private, db)
	certRoute.CertificateAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	progressRoute.ProgressUserRoutes(private, db)
}
