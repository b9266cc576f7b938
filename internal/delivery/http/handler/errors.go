package handler

import (
	"errors"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/domain/applicant"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase failures into HTTP semantics:
// validation to 400, unknown applicant to 404, everything else to 500 with
// the dependency's own message preserved.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Message, err)
	}

	if errors.Is(err, applicant.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Applicant not found", err)
	}

	var dErr *usecase.DependencyError
	if errors.As(err, &dErr) {
		return middleware.NewAppError(fiber.StatusInternalServerError, dErr.Error(), err)
	}

	return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), err)
}
