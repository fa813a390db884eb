package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/datar-psa/gometrics/api"
)

// Embedder wraps a genai.Client to implement api.Embedder
type Embedder struct {
	client    *genai.Client
	modelName string
	cfg       config
}

// NewEmbedder creates a new Gemini embedder
// client: genai.Client from google.golang.org/genai
// modelName: the embedding model to use (e.g., "text-embedding-005")
func NewEmbedder(client *genai.Client, modelName string, opts ...Option) *Embedder {
	return &Embedder{
		client:    client,
		modelName: modelName,
		cfg:       newConfig(opts),
	}
}

// Embed implements api.Embedder.Embed
// Note: This uses the Embedding API which is separate from the text generation API
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: genai client is required", api.ErrInvalidConfiguration)
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: text},
			},
		},
	}

	embedCfg := &genai.EmbedContentConfig{TaskType: e.cfg.taskType}
	if e.cfg.outputDimensionality > 0 {
		dim := e.cfg.outputDimensionality
		embedCfg.OutputDimensionality = &dim
	}

	result, err := e.client.Models.EmbedContent(ctx, e.modelName, contents, embedCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	if len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding vector")
	}

	// Convert []float32 to []float64
	values := result.Embeddings[0].Values
	embedding := make([]float64, len(values))
	for i, v := range values {
		embedding[i] = float64(v)
	}

	e.cfg.logger.Debug("gemini embedding",
		slog.String("model", e.modelName),
		slog.Int("text_length", len(text)),
		slog.Int("dimensions", len(embedding)))

	return embedding, nil
}

// Verify that Embedder implements api.Embedder
var _ api.Embedder = (*Embedder)(nil)
