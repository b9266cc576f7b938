package repository

import (
	"context"
	"strconv"
	"strings"

	"job-khojo/internal/database"

	"github.com/google/uuid"
)

type ResumeUpsert struct {
	UserID      uuid.UUID
	FileName    string
	StoragePath string
	PublicURL   string
}

type EmbeddingRecord struct {
	ResumeID  uuid.UUID
	UserID    uuid.UUID
	Content   string
	Embedding []float32
}

type ResumeRepository interface {
	// UpsertByUserID keeps one resume row per applicant; re-uploads replace
	// the stored path and URL rather than inserting a second row.
	UpsertByUserID(ctx context.Context, in ResumeUpsert) (uuid.UUID, error)
	SaveEmbedding(ctx context.Context, in EmbeddingRecord) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) UpsertByUserID(ctx context.Context, in ResumeUpsert) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, storage_path, public_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		     file_name = EXCLUDED.file_name,
		     storage_path = EXCLUDED.storage_path,
		     public_url = EXCLUDED.public_url,
		     updated_at = now()
		 RETURNING id`,
		in.UserID, in.FileName, in.StoragePath, in.PublicURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresResumeRepository) SaveEmbedding(ctx context.Context, in EmbeddingRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_vectors (resume_id, user_id, content, embedding)
		 VALUES ($1, $2, $3, $4::vector)`,
		in.ResumeID, in.UserID, in.Content, vectorLiteral(in.Embedding),
	)
	return err
}

// vectorLiteral renders a float slice in pgvector's input format, e.g.
// "[0.12,-0.5,1]".
func vectorLiteral(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
