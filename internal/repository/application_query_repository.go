package repository

import (
	"context"
	"time"

	"job-khojo/internal/database"

	"github.com/google/uuid"
)

type ApplicationListFilter struct {
	Limit  int
	Offset int
}

// ApplicationRow is the joined admin-listing view of an applicant. Preference
// and resume columns come from LEFT JOINs and may be empty.
type ApplicationRow struct {
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	JobTitle  string    `json:"job_title"`
	Location  string    `json:"location"`
	Skills    string    `json:"skills"`
	ResumeURL string    `json:"resume_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationQueryRepository interface {
	List(ctx context.Context, f ApplicationListFilter) ([]ApplicationRow, error)
}

type PostgresApplicationQueryRepository struct {
	db database.DB
}

func NewPostgresApplicationQueryRepository(db database.DB) *PostgresApplicationQueryRepository {
	return &PostgresApplicationQueryRepository{db: db}
}

func (r *PostgresApplicationQueryRepository) List(ctx context.Context, f ApplicationListFilter) ([]ApplicationRow, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.full_name, u.email, u.phone, u.city, u.country, u.status,
		        COALESCE(p.job_title, ''), COALESCE(p.location, ''), COALESCE(p.skills, ''),
		        COALESCE(rs.public_url, ''), u.created_at
		 FROM users u
		 LEFT JOIN preferences p ON p.user_id = u.id
		 LEFT JOIN resumes rs ON rs.user_id = u.id
		 ORDER BY u.created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationRow, 0)
	for rows.Next() {
		var row ApplicationRow
		if err := rows.Scan(
			&row.UserID, &row.FullName, &row.Email, &row.Phone, &row.City, &row.Country, &row.Status,
			&row.JobTitle, &row.Location, &row.Skills,
			&row.ResumeURL, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
