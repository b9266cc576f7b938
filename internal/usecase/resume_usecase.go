package usecase

import (
	"context"
	"log"

	"job-khojo/internal/domain/applicant"
	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/infrastructure/storage"
	"job-khojo/internal/repository"

	"github.com/google/uuid"
)

type ResumeUploadInput struct {
	UserID   uuid.UUID
	FileName string
	Data     []byte
}

type ResumeUsecase interface {
	Upload(ctx context.Context, in ResumeUploadInput) (string, error)
}

type Resume struct {
	applicants  repository.ApplicantRepository
	resumes     repository.ResumeRepository
	uploader    storage.Uploader
	cache       *cache.Redis
	allowedExts []string
	logger      *log.Logger
}

func NewResumeUsecase(
	applicants repository.ApplicantRepository,
	resumes repository.ResumeRepository,
	uploader storage.Uploader,
	cacheClient *cache.Redis,
	allowedExts []string,
	logger *log.Logger,
) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	return &Resume{
		applicants:  applicants,
		resumes:     resumes,
		uploader:    uploader,
		cache:       cacheClient,
		allowedExts: allowedExts,
		logger:      logger,
	}
}

// Upload validates, stores the blob, then records the metadata row. The row
// write is ordered strictly after a confirmed upload so it can never
// reference a blob that does not exist.
func (u *Resume) Upload(ctx context.Context, in ResumeUploadInput) (string, error) {
	if in.UserID == uuid.Nil {
		return "", newMissingFieldsError([]string{"user_id"})
	}
	if len(in.Data) == 0 {
		return "", newMissingFieldsError([]string{"resume"})
	}
	if err := checkExtension(in.FileName, u.allowedExts); err != nil {
		return "", err
	}

	exists, err := u.applicants.ExistsByID(ctx, in.UserID)
	if err != nil {
		return "", dependencyErr("lookup applicant", err)
	}
	if !exists {
		return "", applicant.ErrNotFound
	}

	objectPath := storage.ObjectPath(in.FileName)
	url, err := u.uploader.Upload(ctx, objectPath, contentTypeFor(in.FileName), in.Data)
	if err != nil {
		return "", dependencyErr("upload resume", err)
	}

	if _, err := u.resumes.UpsertByUserID(ctx, repository.ResumeUpsert{
		UserID:      in.UserID,
		FileName:    in.FileName,
		StoragePath: objectPath,
		PublicURL:   url,
	}); err != nil {
		return "", dependencyErr("save resume record", err)
	}

	if err := u.cache.InvalidateApplications(ctx); err != nil {
		u.logger.Printf("[Resume] cache invalidation failed: %v", err)
	}

	return url, nil
}
