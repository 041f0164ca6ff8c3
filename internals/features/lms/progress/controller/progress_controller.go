package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	certDTO "sscacademy_backend/internals/features/certificates/user_certificates/dto"
	"sscacademy_backend/internals/features/lms/progress/service"
	helper "sscacademy_backend/internals/helpers"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

type completeLessonRequest struct {
	TimeSpent int `json:"time_spent"` // menit, opsional
}

// POST /api/u/progress/lessons/:lesson_id/complete
// Aman di-retry; kalau lesson ini menuntaskan course, response ikut membawa
// sertifikat yang terbit (atau yang sudah ada).
func (ctrl *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var req completeLessonRequest
	_ = c.BodyParser(&req) // body opsional

	outcome, err := ctrl.Service.CompleteLesson(c.UserContext(), userID, lessonID, req.TimeSpent)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := fiber.Map{
		"progress_percent": outcome.ProgressPercent,
	}
	if outcome.Certificate != nil {
		resp["certificate"] = certDTO.NewCertificateResponse(outcome.Certificate)
	}
	return helper.Success(c, "Lesson marked complete", resp)
}
