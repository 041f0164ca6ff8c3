package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
	helper "sscacademy_backend/internals/helpers"
)

type UserCertificateController struct {
	DB       *gorm.DB
	Store    *service.CertificateStore
	Renderer *service.CertificateRenderer
}

func NewUserCertificateController(db *gorm.DB, store *service.CertificateStore, renderer *service.CertificateRenderer) *UserCertificateController {
	return &UserCertificateController{DB: db, Store: store, Renderer: renderer}
}

// GET /api/u/certificates
// List sertifikat milik user login (termasuk yang revoked).
func (ctrl *UserCertificateController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	certs, err := ctrl.Store.ListByUser(c.UserContext(), userID)
	if err != nil {
		return httpError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(certs))
	start := paging.Offset
	if start > len(certs) {
		start = len(certs)
	}
	end := start + paging.Limit
	if end > len(certs) {
		end = len(certs)
	}

	out := make([]certDTO.CertificateResponse, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, certDTO.NewCertificateResponse(&certs[i]))
	}

	return helper.Success(c, "Certificates fetched", fiber.Map{
		"certificates": out,
		"pagination":   helper.BuildPagination(total, paging, len(out)),
	})
}

// GET /api/u/certificates/:id
// Ownership-scoped: record milik user lain dijawab 404, bukan 403, supaya
// tidak bocor keberadaan record.
func (ctrl *UserCertificateController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	certID, err := parseCertificateID(c.Params("id"))
	if err != nil {
		return httpError(c, err)
	}

	cert, err := ctrl.Store.GetByID(c.UserContext(), certID)
	if err != nil {
		return httpError(c, err)
	}
	if cert.CertificateUserID != userID {
		return httpError(c, service.ErrNotFound)
	}

	return helper.Success(c, "Certificate fetched", certDTO.NewCertificateResponse(cert))
}

// GET /api/p/certificates/:id/download
// Publik seperti halaman verify; identifier dicek bentuknya sebelum lookup.
func (ctrl *UserCertificateController) Download(c *fiber.Ctx) error {
	certID, err := parseCertificateID(c.Params("id"))
	if err != nil {
		return httpError(c, err)
	}

	ctx := c.UserContext()
	cert, err := ctrl.Store.GetByID(ctx, certID)
	if err != nil {
		return httpError(c, err)
	}

	// Lookup read-only collaborator; absennya user/course bukan fatal,
	// renderer punya placeholder.
	var user userModel.UserModel
	if err := ctrl.DB.WithContext(ctx).
		Where("user_id = ?", cert.CertificateUserID).
		First(&user).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return httpError(c, service.ErrStoreUnavailable)
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(ctx).
		Where("course_id = ?", cert.CertificateCourseID).
		First(&course).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return httpError(c, service.ErrStoreUnavailable)
	}

	doc, err := ctrl.Renderer.Render(ctx, &service.RenderInput{
		Certificate: cert,
		Course:      &course,
		User:        &user,
	})
	if err != nil {
		return httpError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%s`, service.FileName(cert)))
	return c.Send(doc)
}

// parseCertificateID menolak identifier yang bukan uuid 36-char SEBELUM
// menyentuh store.
func parseCertificateID(raw string) (uuid.UUID, error) {
	if len(raw) != 36 {
		return uuid.Nil, service.ErrInvalidIdentifier
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrInvalidIdentifier
	}
	return id, nil
}
