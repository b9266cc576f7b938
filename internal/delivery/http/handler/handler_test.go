package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/domain/applicant"
	"job-khojo/internal/repository"
	"job-khojo/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeSubmissionUC struct {
	lastInput usecase.SubmissionInput
	result    usecase.SubmissionResult
	err       error
}

func (f *fakeSubmissionUC) Submit(_ context.Context, in usecase.SubmissionInput) (usecase.SubmissionResult, error) {
	f.lastInput = in
	if f.err != nil {
		return usecase.SubmissionResult{}, f.err
	}
	return f.result, nil
}

type fakeApplicantUC struct {
	lastPersonal usecase.PersonalInput
	lastPrefs    usecase.PreferencesInput
	finalized    uuid.UUID
	userID       uuid.UUID

	personalErr error
	prefsErr    error
	finalizeErr error
}

func (f *fakeApplicantUC) SavePersonal(_ context.Context, in usecase.PersonalInput) (uuid.UUID, error) {
	f.lastPersonal = in
	if f.personalErr != nil {
		return uuid.Nil, f.personalErr
	}
	return f.userID, nil
}

func (f *fakeApplicantUC) SavePreferences(_ context.Context, in usecase.PreferencesInput) error {
	f.lastPrefs = in
	return f.prefsErr
}

func (f *fakeApplicantUC) Finalize(_ context.Context, id uuid.UUID) error {
	f.finalized = id
	return f.finalizeErr
}

type fakeResumeUC struct {
	lastInput usecase.ResumeUploadInput
	url       string
	err       error
}

func (f *fakeResumeUC) Upload(_ context.Context, in usecase.ResumeUploadInput) (string, error) {
	f.lastInput = in
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeListUC struct {
	lastParams usecase.ApplicationListParams
	rows       []repository.ApplicationRow
	err        error
}

func (f *fakeListUC) List(_ context.Context, p usecase.ApplicationListParams) ([]repository.ApplicationRow, error) {
	f.lastParams = p
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeAdminAuthUC struct {
	token string
	err   error
}

func (f *fakeAdminAuthUC) Login(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func newTestApp(register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return doRequest(t, app, req)
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var payload map[string]any
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &payload); err != nil {
			t.Fatalf("decode response %q: %v", b, err)
		}
	}
	return resp, payload
}

func TestSubmitJSON(t *testing.T) {
	id := uuid.New()
	uc := &fakeSubmissionUC{result: usecase.SubmissionResult{
		UserID:    id,
		ResumeURL: "https://cdn.example.com/r.pdf",
		N8NStatus: "200",
	}}
	app := newTestApp(func(a *fiber.App) { NewSubmissionHandler(uc).RegisterRoutes(a) })

	resp, body := doJSON(t, app, http.MethodPost, "/submit", map[string]any{
		"full_name": "Asha Rao",
		"email":     "asha@example.com",
		"age":       29,
		"job_title": "Backend Engineer",
		"file_path": "https://cdn.example.com/r.pdf",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["status"] != "success" {
		t.Fatalf("envelope status = %v", body["status"])
	}
	if body["user_id"] != id.String() {
		t.Fatalf("user_id = %v", body["user_id"])
	}
	if body["n8n_status"] != "200" {
		t.Fatalf("n8n_status = %v", body["n8n_status"])
	}
	if uc.lastInput.AgeRaw != "29" {
		t.Fatalf("age passed as %q", uc.lastInput.AgeRaw)
	}
	if uc.lastInput.FilePath != "https://cdn.example.com/r.pdf" {
		t.Fatalf("file_path passed as %q", uc.lastInput.FilePath)
	}
}

func TestSubmitMultipart(t *testing.T) {
	uc := &fakeSubmissionUC{result: usecase.SubmissionResult{UserID: uuid.New()}}
	app := newTestApp(func(a *fiber.App) { NewSubmissionHandler(uc).RegisterRoutes(a) })

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("full_name", "Asha Rao")
	_ = mw.WriteField("email", "asha@example.com")
	_ = mw.WriteField("relocation", "yes")
	fw, err := mw.CreateFormFile("resume", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 fake")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/submit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if uc.lastInput.Email != "asha@example.com" {
		t.Fatalf("email passed as %q", uc.lastInput.Email)
	}
	if !uc.lastInput.Relocation {
		t.Fatal("relocation checkbox not parsed")
	}
	if uc.lastInput.FileName != "resume.pdf" || len(uc.lastInput.FileData) == 0 {
		t.Fatalf("file not passed through: name=%q bytes=%d", uc.lastInput.FileName, len(uc.lastInput.FileData))
	}
}

func TestSubmitValidationErrorMapsTo400(t *testing.T) {
	uc := &fakeSubmissionUC{err: &usecase.ValidationError{Message: "Missing fields: email"}}
	app := newTestApp(func(a *fiber.App) { NewSubmissionHandler(uc).RegisterRoutes(a) })

	resp, body := doJSON(t, app, http.MethodPost, "/submit", map[string]any{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["status"] != "error" {
		t.Fatalf("envelope status = %v", body["status"])
	}
	if body["message"] != "Missing fields: email" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestSubmitDependencyErrorKeepsMessage(t *testing.T) {
	uc := &fakeSubmissionUC{err: &usecase.DependencyError{Op: "upload resume", Err: errors.New("bucket unavailable")}}
	app := newTestApp(func(a *fiber.App) { NewSubmissionHandler(uc).RegisterRoutes(a) })

	resp, body := doJSON(t, app, http.MethodPost, "/submit", map[string]any{"email": "a@b.c"})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "bucket unavailable") {
		t.Fatalf("message %q should keep the dependency cause", msg)
	}
}

func TestSavePersonal(t *testing.T) {
	id := uuid.New()
	uc := &fakeApplicantUC{userID: id}
	app := newTestApp(func(a *fiber.App) { NewApplicantHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, body := doJSON(t, app, http.MethodPost, "/api/save_personal", map[string]any{
		"full_name": "Asha Rao",
		"email":     "asha@example.com",
		"age":       29,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["user_id"] != id.String() {
		t.Fatalf("user_id = %v", body["user_id"])
	}
	if uc.lastPersonal.AgeRaw != "29" {
		t.Fatalf("age passed as %q", uc.lastPersonal.AgeRaw)
	}
}

func TestSavePreferencesUnknownApplicantMapsTo404(t *testing.T) {
	uc := &fakeApplicantUC{prefsErr: applicant.ErrNotFound}
	app := newTestApp(func(a *fiber.App) { NewApplicantHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, body := doJSON(t, app, http.MethodPost, "/api/save_preferences", map[string]any{
		"user_id":   uuid.NewString(),
		"job_title": "Backend Engineer",
	})

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
}

func TestFinalizeRejectsInvalidUserID(t *testing.T) {
	uc := &fakeApplicantUC{}
	app := newTestApp(func(a *fiber.App) { NewApplicantHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, _ := doJSON(t, app, http.MethodPost, "/api/finalize", map[string]any{"user_id": "not-a-uuid"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/finalize", map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing user_id status = %d", resp.StatusCode)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "user_id") {
		t.Fatalf("message %q should name user_id", msg)
	}
}

func TestUploadResume(t *testing.T) {
	uc := &fakeResumeUC{url: "https://storage.example/public/resumes/x.pdf"}
	app := newTestApp(func(a *fiber.App) { NewResumeHandler(uc).RegisterRoutes(a.Group("/api")) })

	id := uuid.New()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("user_id", id.String())
	fw, _ := mw.CreateFormFile("resume", "cv.docx")
	_, _ = fw.Write([]byte("doc bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload_resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["resume_url"] != uc.url {
		t.Fatalf("resume_url = %v", body["resume_url"])
	}
	if uc.lastInput.UserID != id || uc.lastInput.FileName != "cv.docx" {
		t.Fatalf("input = %+v", uc.lastInput)
	}
}

func TestUploadResumeMissingFile(t *testing.T) {
	uc := &fakeResumeUC{}
	app := newTestApp(func(a *fiber.App) { NewResumeHandler(uc).RegisterRoutes(a.Group("/api")) })

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("user_id", uuid.NewString())
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload_resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
}

func TestListApplications(t *testing.T) {
	rows := []repository.ApplicationRow{
		{UserID: uuid.New(), FullName: "Asha Rao", Email: "asha@example.com", Status: "completed"},
		{UserID: uuid.New(), FullName: "Ben Okafor", Email: "ben@example.com", Status: "pending"},
	}
	uc := &fakeListUC{rows: rows}
	app := newTestApp(func(a *fiber.App) { NewApplicationHandler(uc).RegisterRoutes(a.Group("/api")) })

	req := httptest.NewRequest(http.MethodGet, "/api/applications?limit=10&offset=5", nil)
	resp, body := doRequest(t, app, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if uc.lastParams.Limit != 10 || uc.lastParams.Offset != 5 {
		t.Fatalf("params = %+v", uc.lastParams)
	}
	if body["count"] != float64(2) {
		t.Fatalf("count = %v", body["count"])
	}
	apps, ok := body["applications"].([]any)
	if !ok || len(apps) != 2 {
		t.Fatalf("applications = %v", body["applications"])
	}
	first, _ := apps[0].(map[string]any)
	if first["email"] != "asha@example.com" {
		t.Fatalf("first row = %v", first)
	}
}

func TestAdminLogin(t *testing.T) {
	uc := &fakeAdminAuthUC{token: "signed.jwt.token"}
	app := newTestApp(func(a *fiber.App) { NewAdminAuthHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]any{"password": "hunter2"})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["token"] != "signed.jwt.token" {
		t.Fatalf("token = %v", body["token"])
	}
}

func TestAdminLoginWhenNotConfigured(t *testing.T) {
	uc := &fakeAdminAuthUC{err: usecase.ErrAdminAuthDisabled}
	app := newTestApp(func(a *fiber.App) { NewAdminAuthHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]any{"password": "anything"})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	uc := &fakeAdminAuthUC{err: usecase.ErrInvalidCredentials}
	app := newTestApp(func(a *fiber.App) { NewAdminAuthHandler(uc).RegisterRoutes(a.Group("/api")) })

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]any{"password": "nope"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
