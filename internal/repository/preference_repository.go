package repository

import (
	"context"

	"job-khojo/internal/database"

	"github.com/google/uuid"
)

type PreferenceUpsert struct {
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

type PreferenceRepository interface {
	// UpsertByUserID keeps a single preferences row per applicant; a later
	// save replaces the previously stored values.
	UpsertByUserID(ctx context.Context, in PreferenceUpsert) error
}

type PostgresPreferenceRepository struct {
	db database.DB
}

func NewPostgresPreferenceRepository(db database.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

func (r *PostgresPreferenceRepository) UpsertByUserID(ctx context.Context, in PreferenceUpsert) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO preferences (user_id, job_title, job_type, location, salary, industry, experience, relocation, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		     job_title = EXCLUDED.job_title,
		     job_type = EXCLUDED.job_type,
		     location = EXCLUDED.location,
		     salary = EXCLUDED.salary,
		     industry = EXCLUDED.industry,
		     experience = EXCLUDED.experience,
		     relocation = EXCLUDED.relocation,
		     skills = EXCLUDED.skills,
		     updated_at = now()`,
		in.UserID, in.JobTitle, in.JobType, in.Location, in.Salary, in.Industry, in.Experience, in.Relocation, in.Skills,
	)
	return err
}
