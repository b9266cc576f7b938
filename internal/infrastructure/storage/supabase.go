package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"job-khojo/internal/config"

	"github.com/google/uuid"
)

// Uploader stores a blob and returns a durable retrieval URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// SupabaseClient talks to the Supabase Storage REST API with the service key.
type SupabaseClient struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
	logger     *log.Logger
}

func NewSupabaseClient(cfg config.StorageConfig, logger *log.Logger) *SupabaseClient {
	return &SupabaseClient{
		baseURL:    strings.TrimRight(cfg.SupabaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		client:     &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (c *SupabaseClient) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil storage client")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Storage] upload error bucket=%s path=%s status=%d body=%q", c.bucket, objectPath, resp.StatusCode, bodyStr)
		}
		return "", fmt.Errorf("storage upload failed: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath), nil
}

var _ Uploader = (*SupabaseClient)(nil)

// ObjectPath builds a collision-resistant object path for a resume upload so
// a re-used filename never overwrites another applicant's blob.
func ObjectPath(fileName string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("resumes/%d_%s_%s", time.Now().UnixNano(), suffix, sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "resume"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
