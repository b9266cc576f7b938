package handler

import (
	"strconv"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/pkg/response"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicantHandler struct {
	uc usecase.ApplicantUsecase
}

type savePersonalRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Age      *int   `json:"age"`
}

type savePreferencesRequest struct {
	UserID     string `json:"user_id"`
	JobTitle   string `json:"job_title"`
	JobType    string `json:"job_type"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	Industry   string `json:"industry"`
	Experience string `json:"experience"`
	Relocation bool   `json:"relocation"`
	Skills     string `json:"skills"`
}

type finalizeRequest struct {
	UserID string `json:"user_id"`
}

func NewApplicantHandler(uc usecase.ApplicantUsecase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

func (h *ApplicantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/save_personal", h.SavePersonal)
	r.Post("/save_preferences", h.SavePreferences)
	r.Post("/finalize", h.Finalize)
}

func (h *ApplicantHandler) SavePersonal(c fiber.Ctx) error {
	var req savePersonalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", err)
	}

	in := usecase.PersonalInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
	}
	if req.Age != nil {
		in.AgeRaw = strconv.Itoa(*req.Age)
	}

	userID, err := h.uc.SavePersonal(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Personal information saved",
		"user_id": userID.String(),
	})
}

func (h *ApplicantHandler) SavePreferences(c fiber.Ctx) error {
	var req savePreferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", err)
	}

	userID, appErr := parseUserID(req.UserID)
	if appErr != nil {
		return appErr
	}

	if err := h.uc.SavePreferences(c.Context(), usecase.PreferencesInput{
		UserID:     userID,
		JobTitle:   req.JobTitle,
		JobType:    req.JobType,
		Location:   req.Location,
		Salary:     req.Salary,
		Industry:   req.Industry,
		Experience: req.Experience,
		Relocation: req.Relocation,
		Skills:     req.Skills,
	}); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Preferences saved",
	})
}

func (h *ApplicantHandler) Finalize(c fiber.Ctx) error {
	var req finalizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", err)
	}

	userID, appErr := parseUserID(req.UserID)
	if appErr != nil {
		return appErr
	}

	if err := h.uc.Finalize(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Application finalized",
	})
}

func parseUserID(raw string) (uuid.UUID, *middleware.AppError) {
	if raw == "" {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Missing fields: user_id", nil)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid user_id", err)
	}
	return id, nil
}
