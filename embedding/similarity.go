// Package embedding implements sentence similarity over an injected embedding model.
package embedding

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/aggregate"
	"github.com/datar-psa/gometrics/internal/validate"
)

// SentenceSimilarityOptions configures the SentenceSimilarity metric
type SentenceSimilarityOptions struct {
	// Reduction combines per-pair similarities. The zero value is the mean.
	Reduction api.Reduction
	// Rescale maps cosine similarity from [-1, 1] to [0, 1] before it is recorded
	Rescale bool
}

// SentenceSimilarity measures semantic similarity between each prediction and
// its target as the cosine similarity of their embeddings.
type SentenceSimilarity struct {
	embedder     api.Embedder
	rescale      bool
	similarities aggregate.Aggregator
}

// NewSentenceSimilarity creates a sentence similarity metric backed by embedder.
func NewSentenceSimilarity(embedder api.Embedder, opts SentenceSimilarityOptions) (*SentenceSimilarity, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", api.ErrInvalidConfiguration)
	}
	if !opts.Reduction.Valid() {
		return nil, fmt.Errorf("%w: unknown reduction %v", api.ErrInvalidConfiguration, opts.Reduction)
	}
	return &SentenceSimilarity{
		embedder:     embedder,
		rescale:      opts.Rescale,
		similarities: aggregate.New(opts.Reduction),
	}, nil
}

func (m *SentenceSimilarity) Validate(predictions, targets []string) error {
	return validate.Batch(len(predictions), len(targets))
}

// Update embeds every text of the batch before recording anything, so an
// embedder failure leaves the state unchanged.
func (m *SentenceSimilarity) Update(ctx context.Context, predictions, targets []string) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}

	cache := make(map[string][]float64, len(predictions)+len(targets))
	embed := func(text string) ([]float64, error) {
		if v, ok := cache[text]; ok {
			return v, nil
		}
		v, err := m.embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		cache[text] = v
		return v, nil
	}

	scores := make([]float64, len(predictions))
	for i := range predictions {
		p, err := embed(predictions[i])
		if err != nil {
			return fmt.Errorf("failed to embed prediction %d: %w", i, err)
		}
		t, err := embed(targets[i])
		if err != nil {
			return fmt.Errorf("failed to embed target %d: %w", i, err)
		}
		scores[i] = cosineSimilarity(p, t)
		if m.rescale {
			scores[i] = min(max((scores[i]+1)/2, 0), 1)
		}
	}

	for _, s := range scores {
		m.similarities.Add(s)
	}
	return nil
}

func (m *SentenceSimilarity) Compute() (float64, bool) {
	return m.similarities.Compute()
}

func (m *SentenceSimilarity) Reset() {
	m.similarities.Reset()
}

// cosineSimilarity computes the cosine similarity between two vectors
// Returns a value between -1 and 1, where 1 means identical direction
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	normA, normB := floats.Norm(a, 2), floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
