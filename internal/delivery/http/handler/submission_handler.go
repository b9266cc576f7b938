package handler

import (
	"io"
	"strconv"
	"strings"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/pkg/response"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SubmissionHandler struct {
	uc usecase.SubmissionUsecase
}

// submissionRequest is the JSON variant of /submit: no file bytes, just an
// optional reference to an already-stored blob and extracted resume text.
type submissionRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Age      *int   `json:"age"`

	JobTitle   string `json:"job_title"`
	JobType    string `json:"job_type"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	Industry   string `json:"industry"`
	Experience string `json:"experience"`
	Relocation bool   `json:"relocation"`
	Skills     string `json:"skills"`

	FilePath   string `json:"file_path"`
	ResumeText string `json:"resume_text"`
}

func NewSubmissionHandler(uc usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

func (h *SubmissionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/submit", h.Submit)
}

// Submit accepts the single-shot application form, as multipart/form-data
// with the resume attached or as JSON referencing an external file.
func (h *SubmissionHandler) Submit(c fiber.Ctx) error {
	in, err := h.parseInput(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}

	fields := fiber.Map{
		"message": "Application submitted successfully",
		"user_id": res.UserID.String(),
	}
	if res.ResumeURL != "" {
		fields["resume_url"] = res.ResumeURL
	}
	if res.N8NStatus != "" {
		fields["n8n_status"] = res.N8NStatus
	}
	return response.Success(c, fiber.StatusOK, fields)
}

func (h *SubmissionHandler) parseInput(c fiber.Ctx) (usecase.SubmissionInput, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return h.parseMultipart(c)
	}

	var req submissionRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.SubmissionInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", err)
	}

	in := usecase.SubmissionInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		JobTitle:   req.JobTitle,
		JobType:    req.JobType,
		Location:   req.Location,
		Salary:     req.Salary,
		Industry:   req.Industry,
		Experience: req.Experience,
		Relocation: req.Relocation,
		Skills:     req.Skills,
		FilePath:   req.FilePath,
		ResumeText: req.ResumeText,
	}
	if req.Age != nil {
		in.AgeRaw = strconv.Itoa(*req.Age)
	}
	return in, nil
}

func (h *SubmissionHandler) parseMultipart(c fiber.Ctx) (usecase.SubmissionInput, error) {
	in := usecase.SubmissionInput{
		FullName:   c.FormValue("full_name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		City:       c.FormValue("city"),
		State:      c.FormValue("state"),
		Country:    c.FormValue("country"),
		AgeRaw:     c.FormValue("age"),
		JobTitle:   c.FormValue("job_title"),
		JobType:    c.FormValue("job_type"),
		Location:   c.FormValue("location"),
		Salary:     c.FormValue("salary"),
		Industry:   c.FormValue("industry"),
		Experience: c.FormValue("experience"),
		Relocation: parseCheckbox(c.FormValue("relocation")),
		Skills:     c.FormValue("skills"),
		ResumeText: c.FormValue("resume_text"),
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return usecase.SubmissionInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Missing fields: resume", err)
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.SubmissionInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Could not read the uploaded resume", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.SubmissionInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Could not read the uploaded resume", err)
	}

	in.FileName = fh.Filename
	in.FileData = data
	return in, nil
}

func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
