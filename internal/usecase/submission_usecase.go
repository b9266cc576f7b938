package usecase

import (
	"context"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"job-khojo/internal/domain/applicant"
	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/infrastructure/embedding"
	"job-khojo/internal/infrastructure/storage"
	"job-khojo/internal/infrastructure/webhook"
	"job-khojo/internal/repository"
	"job-khojo/internal/ws"

	"github.com/google/uuid"
)

// N8NStatusFailed is reported when the automation webhook could not be
// delivered; the submission itself still succeeds.
const N8NStatusFailed = "failed"

type SubmissionInput struct {
	FullName string
	Email    string
	Phone    string
	City     string
	State    string
	Country  string
	AgeRaw   string

	JobTitle   string
	JobType    string
	Location   string
	Salary     string
	Industry   string
	Experience string
	Relocation bool
	Skills     string

	// Multipart variant: the resume file itself.
	FileName string
	FileData []byte

	// JSON variant: a reference to an already-stored blob, and optionally
	// the extracted resume text for embedding.
	FilePath   string
	ResumeText string
}

type SubmissionResult struct {
	UserID    uuid.UUID
	ResumeURL string
	// N8NStatus carries the webhook HTTP status on delivery, "failed" on a
	// delivery error, and stays empty when the notifier is not configured.
	N8NStatus string
}

type SubmissionUsecase interface {
	Submit(ctx context.Context, in SubmissionInput) (SubmissionResult, error)
}

type Submission struct {
	applicants repository.ApplicantRepository
	prefs      repository.PreferenceRepository
	resumes    repository.ResumeRepository

	uploader storage.Uploader
	notifier webhook.Notifier  // nil = disabled
	embedder embedding.Embedder // nil = disabled
	cache    *cache.Redis

	allowedExts []string
	logger      *log.Logger

	announce func(userID uuid.UUID, email, jobTitle string)
}

func NewSubmissionUsecase(
	applicants repository.ApplicantRepository,
	prefs repository.PreferenceRepository,
	resumes repository.ResumeRepository,
	uploader storage.Uploader,
	notifier webhook.Notifier,
	embedder embedding.Embedder,
	cacheClient *cache.Redis,
	allowedExts []string,
	logger *log.Logger,
) *Submission {
	if logger == nil {
		logger = log.Default()
	}
	return &Submission{
		applicants:  applicants,
		prefs:       prefs,
		resumes:     resumes,
		uploader:    uploader,
		notifier:    notifier,
		embedder:    embedder,
		cache:       cacheClient,
		allowedExts: allowedExts,
		logger:      logger,
		announce:    ws.NotifyApplicationReceived,
	}
}

// Submit runs the whole intake pipeline in strict order: validate, upsert
// identity and preferences, upload + record the resume, then the best-effort
// tail (embedding, webhook) and the completed-status write. Validation
// happens before any side effect; a failed upload aborts before any row can
// reference the missing blob.
func (s *Submission) Submit(ctx context.Context, in SubmissionInput) (SubmissionResult, error) {
	if err := checkRequired(requiredField{"email", in.Email}); err != nil {
		return SubmissionResult{}, err
	}
	age, vErr := parseAge(in.AgeRaw)
	if vErr != nil {
		return SubmissionResult{}, vErr
	}
	hasFile := len(in.FileData) > 0
	if hasFile {
		if err := checkExtension(in.FileName, s.allowedExts); err != nil {
			return SubmissionResult{}, err
		}
	}

	userID, err := s.applicants.UpsertByEmail(ctx, repository.ApplicantUpsert{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		City:     in.City,
		State:    in.State,
		Country:  in.Country,
		Age:      age,
	})
	if err != nil {
		return SubmissionResult{}, dependencyErr("upsert identity", err)
	}

	if err := s.prefs.UpsertByUserID(ctx, repository.PreferenceUpsert{
		UserID:     userID,
		JobTitle:   in.JobTitle,
		JobType:    in.JobType,
		Location:   in.Location,
		Salary:     in.Salary,
		Industry:   in.Industry,
		Experience: in.Experience,
		Relocation: in.Relocation,
		Skills:     in.Skills,
	}); err != nil {
		return SubmissionResult{}, dependencyErr("save preferences", err)
	}

	var resumeURL string
	var resumeID uuid.UUID
	switch {
	case hasFile:
		objectPath := storage.ObjectPath(in.FileName)
		url, err := s.uploader.Upload(ctx, objectPath, contentTypeFor(in.FileName), in.FileData)
		if err != nil {
			return SubmissionResult{}, dependencyErr("upload resume", err)
		}
		resumeURL = url
		resumeID, err = s.resumes.UpsertByUserID(ctx, repository.ResumeUpsert{
			UserID:      userID,
			FileName:    in.FileName,
			StoragePath: objectPath,
			PublicURL:   url,
		})
		if err != nil {
			return SubmissionResult{}, dependencyErr("save resume record", err)
		}
	case in.FilePath != "":
		resumeURL = in.FilePath
		resumeID, err = s.resumes.UpsertByUserID(ctx, repository.ResumeUpsert{
			UserID:      userID,
			FileName:    in.FilePath,
			StoragePath: in.FilePath,
			PublicURL:   in.FilePath,
		})
		if err != nil {
			return SubmissionResult{}, dependencyErr("save resume record", err)
		}
	}

	s.embedBestEffort(ctx, resumeID, userID, in)
	n8nStatus := s.notifyBestEffort(ctx, userID, in, resumeURL)

	if _, err := s.applicants.UpdateStatus(ctx, userID, applicant.StatusCompleted); err != nil {
		return SubmissionResult{}, dependencyErr("finalize status", err)
	}

	if err := s.cache.InvalidateApplications(ctx); err != nil {
		s.logger.Printf("[Submit] cache invalidation failed: %v", err)
	}
	if s.announce != nil {
		s.announce(userID, in.Email, in.JobTitle)
	}

	return SubmissionResult{UserID: userID, ResumeURL: resumeURL, N8NStatus: n8nStatus}, nil
}

func (s *Submission) embedBestEffort(ctx context.Context, resumeID, userID uuid.UUID, in SubmissionInput) {
	if s.embedder == nil || resumeID == uuid.Nil {
		return
	}
	content := profileSummary(in.JobTitle, in.Skills, in.Experience, in.ResumeText)
	if content == "" {
		return
	}
	vec, err := s.embedder.EmbedText(ctx, content)
	if err != nil {
		s.logger.Printf("[Submit] embedding failed user=%s: %v", userID, err)
		return
	}
	if err := s.resumes.SaveEmbedding(ctx, repository.EmbeddingRecord{
		ResumeID:  resumeID,
		UserID:    userID,
		Content:   content,
		Embedding: vec,
	}); err != nil {
		s.logger.Printf("[Submit] saving embedding failed user=%s: %v", userID, err)
	}
}

func (s *Submission) notifyBestEffort(ctx context.Context, userID uuid.UUID, in SubmissionInput, resumeURL string) string {
	if s.notifier == nil {
		return ""
	}
	status, err := s.notifier.Notify(ctx, webhook.Event{
		UserID:    userID.String(),
		Email:     in.Email,
		JobTitle:  in.JobTitle,
		Location:  in.Location,
		Skills:    in.Skills,
		ResumeURL: resumeURL,
	})
	if err != nil {
		s.logger.Printf("[Submit] webhook delivery failed user=%s: %v", userID, err)
		return N8NStatusFailed
	}
	return strconv.Itoa(status)
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
