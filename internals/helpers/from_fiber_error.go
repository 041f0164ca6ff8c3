package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError menerjemahkan error yang naik dari service/middleware
// (umumnya *fiber.Error hasil fiber.NewError) ke envelope JSON via Error,
// supaya response error seragam dengan jalur sukses. Error non-fiber yang
// lolos taksonomi jatuh ke 500 dengan pesan aslinya.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
