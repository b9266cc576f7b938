package handler

import (
	"io"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/pkg/response"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload_resume", h.Upload)
}

// Upload takes a multipart form with a "user_id" field and a "resume" file
// part and returns the public URL of the stored document.
func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, appErr := parseUserID(c.FormValue("user_id"))
	if appErr != nil {
		return appErr
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing fields: resume", err)
	}
	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read the uploaded resume", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read the uploaded resume", err)
	}

	url, err := h.uc.Upload(c.Context(), usecase.ResumeUploadInput{
		UserID:   userID,
		FileName: fh.Filename,
		Data:     data,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message":    "Resume uploaded",
		"resume_url": url,
	})
}
