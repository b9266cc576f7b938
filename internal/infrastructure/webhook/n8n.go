package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"job-khojo/internal/config"
)

// Event is the reduced summary forwarded to the automation webhook after a
// submission is safely persisted.
type Event struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	JobTitle  string `json:"job_title"`
	Location  string `json:"location"`
	Skills    string `json:"skills"`
	ResumeURL string `json:"resume_url,omitempty"`
}

// Notifier delivers an Event best-effort: callers log failures and move on.
type Notifier interface {
	Notify(ctx context.Context, evt Event) (int, error)
}

type N8NClient struct {
	url    string
	client *http.Client
	logger *log.Logger
}

func NewN8NClient(cfg config.WebhookConfig, logger *log.Logger) *N8NClient {
	if !cfg.Enabled() {
		return nil
	}
	return &N8NClient{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *N8NClient) Notify(ctx context.Context, evt Event) (int, error) {
	if c == nil || c.client == nil {
		return 0, fmt.Errorf("nil webhook client")
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Webhook] non-2xx from n8n url=%s status=%d body=%q", c.url, resp.StatusCode, bodyStr)
		}
		return resp.StatusCode, fmt.Errorf("webhook delivery failed: status=%d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

var _ Notifier = (*N8NClient)(nil)
