package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sscacademy_backend/internals/features/certificates/user_certificates/service"
	helper "sscacademy_backend/internals/helpers"
)

// httpError memetakan taksonomi error service ke response HTTP. Tiap jenis
// harus tetap bisa dibedakan caller; jangan dipukul rata jadi 500.
func httpError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate identifier format")
	case errors.Is(err, service.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
	case errors.Is(err, service.ErrRenderFailure):
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to render certificate document")
	case errors.Is(err, service.ErrStoreUnavailable):
		return helper.Error(c, fiber.StatusServiceUnavailable, "Certificate store unavailable, please retry")
	default:
		return helper.FromFiberError(c, err)
	}
}
