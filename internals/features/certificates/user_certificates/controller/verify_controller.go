package controller

import (
	"github.com/gofiber/fiber/v2"

	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	helper "sscacademy_backend/internals/helpers"
)

// VerifyController melayani atestasi publik: tanpa auth, read-only, aman
// dipanggil berapa kali pun.
type VerifyController struct {
	Verification *service.VerificationService
}

func NewVerifyController(verification *service.VerificationService) *VerifyController {
	return &VerifyController{Verification: verification}
}

// GET /api/p/certificates/verify/:id
// :id boleh certificate_id (uuid) atau certificate_number.
// Revoked tetap 200 dengan status "revoked" — beda dari 404.
func (ctrl *VerifyController) Verify(c *fiber.Ctx) error {
	result, err := ctrl.Verification.Verify(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Certificate verification result", result)
}
