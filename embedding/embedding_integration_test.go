package embedding

import (
	"context"
	"testing"

	"github.com/datar-psa/gometrics/internal/testutils"
)

// TestSentenceSimilarity_Integration tests SentenceSimilarity with the real Gemini embeddings API
// This test requires valid Google Cloud credentials and uses hypert to cache requests
func TestSentenceSimilarity_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testutils.SkipWithoutRecordings(t, "embedding")

	ctx := context.Background()

	// Create Gemini embedder using test utilities
	embedder := testutils.NewGeminiEmbedder(t, testutils.DefaultGeminiTestConfig("embedding"), "text-embedding-005")

	tests := []struct {
		name     string
		output   string
		expected string
		minScore float64
		maxScore float64
	}{
		{
			name:     "identical text",
			output:   "What is the type of the leave?",
			expected: "What is the type of the leave?",
			minScore: 0.95,
			maxScore: 1.0,
		},
		{
			name:     "semantically similar questions",
			output:   "What is the type of the leave?",
			expected: "Please provide type of the leave",
			minScore: 0.85,
			maxScore: 1.0,
		},
		{
			name:     "similar but different phrasing",
			output:   "What is the capital of France?",
			expected: "Tell me France's capital city",
			minScore: 0.80,
			maxScore: 1.0,
		},
		{
			name:     "somewhat related",
			output:   "What is the weather today?",
			expected: "Tell me about the temperature",
			minScore: 0.60,
			maxScore: 0.95,
		},
		{
			name:     "completely different",
			output:   "What is the capital of France?",
			expected: "How do I bake a cake?",
			minScore: 0.0,
			maxScore: 0.70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewSentenceSimilarity(embedder, SentenceSimilarityOptions{Rescale: true})
			if err != nil {
				t.Fatalf("NewSentenceSimilarity() unexpected error = %v", err)
			}
			if err := m.Update(ctx, []string{tt.output}, []string{tt.expected}); err != nil {
				t.Fatalf("SentenceSimilarity.Update() unexpected error = %v", err)
			}

			score, ok := m.Compute()
			if !ok {
				t.Fatal("SentenceSimilarity.Compute() undefined after update")
			}
			if score < tt.minScore || score > tt.maxScore {
				t.Errorf("SentenceSimilarity.Compute() = %v, want between %v and %v", score, tt.minScore, tt.maxScore)
			}
		})
	}
}
