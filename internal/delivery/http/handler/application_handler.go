package handler

import (
	"strconv"

	"job-khojo/internal/delivery/http/dto"
	"job-khojo/internal/pkg/response"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationListUsecase
}

func NewApplicationHandler(uc usecase.ApplicationListUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.List)
}

// List returns applications newest first. Out-of-range "limit" and "offset"
// query values are clamped rather than rejected.
func (h *ApplicationHandler) List(c fiber.Ctx) error {
	params := usecase.ApplicationListParams{
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}

	rows, err := h.uc.List(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	apps := dto.NewApplicationList(rows)
	return response.Success(c, fiber.StatusOK, fiber.Map{
		"count":        len(apps),
		"applications": apps,
	})
}

func queryInt(c fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
