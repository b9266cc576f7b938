package embedding

import (
	"context"
	"fmt"

	"job-khojo/internal/config"

	"github.com/tmc/langchaingo/llms/googleai"
)

// Embedder turns text into a vector for the resume-matching RPC. Optional:
// callers treat a nil Embedder as "feature disabled".
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type embeddingClient interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

type GeminiEmbedder struct {
	client embeddingClient
}

// NewGeminiEmbedder returns nil (disabled) when no API key is configured.
func NewGeminiEmbedder(ctx context.Context, cfg config.EmbeddingConfig) (*GeminiEmbedder, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init gemini embedder: %w", err)
	}
	return &GeminiEmbedder{client: llm}, nil
}

func (e *GeminiEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if e == nil || e.client == nil {
		return nil, fmt.Errorf("embedder not configured")
	}
	vecs, err := e.client.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return vecs[0], nil
}

var _ Embedder = (*GeminiEmbedder)(nil)
