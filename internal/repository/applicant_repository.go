package repository

import (
	"context"

	"job-khojo/internal/database"

	"github.com/google/uuid"
)

type ApplicantUpsert struct {
	FullName string
	Email    string
	Phone    string
	City     string
	State    string
	Country  string
	Age      *int
}

type ApplicantRepository interface {
	// UpsertByEmail inserts the identity record or, when the email already
	// exists, merges the non-empty fields into it. Atomic with respect to
	// concurrent callers; at most one row per email ever exists.
	UpsertByEmail(ctx context.Context, in ApplicantUpsert) (uuid.UUID, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateStatus returns false when no row matched the id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

type PostgresApplicantRepository struct {
	db database.DB
}

func NewPostgresApplicantRepository(db database.DB) *PostgresApplicantRepository {
	return &PostgresApplicantRepository{db: db}
}

func (r *PostgresApplicantRepository) UpsertByEmail(ctx context.Context, in ApplicantUpsert) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone, city, state, country, age)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO UPDATE SET
		     full_name = COALESCE(NULLIF(EXCLUDED.full_name, ''), users.full_name),
		     phone = COALESCE(NULLIF(EXCLUDED.phone, ''), users.phone),
		     city = COALESCE(NULLIF(EXCLUDED.city, ''), users.city),
		     state = COALESCE(NULLIF(EXCLUDED.state, ''), users.state),
		     country = COALESCE(NULLIF(EXCLUDED.country, ''), users.country),
		     age = COALESCE(EXCLUDED.age, users.age),
		     updated_at = now()
		 RETURNING id`,
		in.FullName, in.Email, in.Phone, in.City, in.State, in.Country, in.Age,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresApplicantRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
