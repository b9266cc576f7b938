package usecase

import (
	"context"
	"log"

	"job-khojo/internal/domain/applicant"
	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/repository"

	"github.com/google/uuid"
)

type PersonalInput struct {
	FullName string
	Email    string
	Phone    string
	City     string
	State    string
	Country  string
	AgeRaw   string
}

type PreferencesInput struct {
	UserID     uuid.UUID
	JobTitle   string
	JobType    string
	Location   string
	Salary     string
	Industry   string
	Experience string
	Relocation bool
	Skills     string
}

// ApplicantUsecase covers the stepwise submission flow: personal info first,
// preferences and resume later, finalize last.
type ApplicantUsecase interface {
	SavePersonal(ctx context.Context, in PersonalInput) (uuid.UUID, error)
	SavePreferences(ctx context.Context, in PreferencesInput) error
	Finalize(ctx context.Context, userID uuid.UUID) error
}

type Applicant struct {
	applicants repository.ApplicantRepository
	prefs      repository.PreferenceRepository
	cache      *cache.Redis
	logger     *log.Logger
}

func NewApplicantUsecase(
	applicants repository.ApplicantRepository,
	prefs repository.PreferenceRepository,
	cacheClient *cache.Redis,
	logger *log.Logger,
) *Applicant {
	if logger == nil {
		logger = log.Default()
	}
	return &Applicant{applicants: applicants, prefs: prefs, cache: cacheClient, logger: logger}
}

func (u *Applicant) SavePersonal(ctx context.Context, in PersonalInput) (uuid.UUID, error) {
	if err := checkRequired(
		requiredField{"full_name", in.FullName},
		requiredField{"email", in.Email},
	); err != nil {
		return uuid.Nil, err
	}
	age, vErr := parseAge(in.AgeRaw)
	if vErr != nil {
		return uuid.Nil, vErr
	}

	userID, err := u.applicants.UpsertByEmail(ctx, repository.ApplicantUpsert{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		City:     in.City,
		State:    in.State,
		Country:  in.Country,
		Age:      age,
	})
	if err != nil {
		return uuid.Nil, dependencyErr("upsert identity", err)
	}

	u.invalidateListing(ctx)
	return userID, nil
}

func (u *Applicant) SavePreferences(ctx context.Context, in PreferencesInput) error {
	if in.UserID == uuid.Nil {
		return newMissingFieldsError([]string{"user_id"})
	}

	exists, err := u.applicants.ExistsByID(ctx, in.UserID)
	if err != nil {
		return dependencyErr("lookup applicant", err)
	}
	if !exists {
		return applicant.ErrNotFound
	}

	if err := u.prefs.UpsertByUserID(ctx, repository.PreferenceUpsert{
		UserID:     in.UserID,
		JobTitle:   in.JobTitle,
		JobType:    in.JobType,
		Location:   in.Location,
		Salary:     in.Salary,
		Industry:   in.Industry,
		Experience: in.Experience,
		Relocation: in.Relocation,
		Skills:     in.Skills,
	}); err != nil {
		return dependencyErr("save preferences", err)
	}

	u.invalidateListing(ctx)
	return nil
}

// Finalize flips the applicant's status to completed. It never creates a
// record: an unknown id is reported as not found.
func (u *Applicant) Finalize(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return newMissingFieldsError([]string{"user_id"})
	}

	found, err := u.applicants.UpdateStatus(ctx, userID, applicant.StatusCompleted)
	if err != nil {
		return dependencyErr("finalize status", err)
	}
	if !found {
		return applicant.ErrNotFound
	}

	u.invalidateListing(ctx)
	return nil
}

func (u *Applicant) invalidateListing(ctx context.Context) {
	if err := u.cache.InvalidateApplications(ctx); err != nil {
		u.logger.Printf("[Applicant] cache invalidation failed: %v", err)
	}
}
