package handler

import (
	"errors"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/pkg/response"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminAuthHandler struct {
	uc usecase.AdminAuthUsecase
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func NewAdminAuthHandler(uc usecase.AdminAuthUsecase) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc}
}

func (h *AdminAuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/admin/login", h.Login)
}

func (h *AdminAuthHandler) Login(c fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", err)
	}

	token, err := h.uc.Login(req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
		}
		if errors.Is(err, usecase.ErrAdminAuthDisabled) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Admin auth not configured", err)
		}
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
	})
}
