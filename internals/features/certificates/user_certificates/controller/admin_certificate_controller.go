package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	helper "sscacademy_backend/internals/helpers"
)

var validate = validator.New()

// AdminCertificateController: surface operator — revoke + injeksi
// CompletionEvent manual (backfill / koreksi). Route-nya digate role admin.
type AdminCertificateController struct {
	Store    *service.CertificateStore
	Issuance *service.IssuanceService
}

func NewAdminCertificateController(store *service.CertificateStore, issuance *service.IssuanceService) *AdminCertificateController {
	return &AdminCertificateController{Store: store, Issuance: issuance}
}

// POST /api/a/certificates/:id/revoke
// Idempoten: revoke dua kali tetap 200. Tidak ada un-revoke.
func (ctrl *AdminCertificateController) Revoke(c *fiber.Ctx) error {
	certID, err := parseCertificateID(c.Params("id"))
	if err != nil {
		return httpError(c, err)
	}

	cert, err := ctrl.Store.Revoke(c.UserContext(), certID)
	if err != nil {
		return httpError(c, err)
	}
	return helper.Success(c, "Certificate revoked", certDTO.NewCertificateResponse(cert))
}

// POST /api/a/certificates/issue
// Menjalankan issuance engine dengan event buatan operator. Tetap lewat
// precondition + unique index yang sama dengan jalur completion normal.
func (ctrl *AdminCertificateController) Issue(c *fiber.Ctx) error {
	var req certDTO.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cert, err := ctrl.Issuance.IssueOnCompletion(c.UserContext(), certDTO.CompletionEvent{
		UserID:      req.UserID,
		CourseID:    req.CourseID,
		CompletedAt: time.Now(),
		Grade:       req.Grade,
	})
	if err != nil {
		return httpError(c, err)
	}
	if cert == nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"User has not completed all required modules of this course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate issued", certDTO.NewCertificateResponse(cert))
}
