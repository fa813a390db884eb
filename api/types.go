package api

import "context"

// Metric is the incremental contract shared by every scalar metric.
//
// P is the element type of the predictions and T the element type of the
// targets. Implementations own their sufficient statistics and are not safe
// for concurrent use; callers that share an instance must synchronize.
type Metric[P, T any] interface {
	// Validate checks a batch without touching the accumulated state.
	Validate(predictions []P, targets []T) error
	// Update folds a batch into the accumulated state.
	// A batch that fails validation leaves the state unchanged.
	Update(predictions []P, targets []T) error
	// Compute derives the current value from the accumulated state.
	// The boolean is false when no data has been seen yet or when the value
	// is undefined for the data seen so far.
	Compute() (float64, bool)
	// Reset restores the post-construction state. Configuration is kept.
	Reset()
}

// Embedder generates vector embeddings for text
type Embedder interface {
	// Embed generates an embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ScoreSource produces one prediction score per text, for example the
// confidence of a classifier. The scores can be fed to classification metrics.
type ScoreSource interface {
	Scores(ctx context.Context, texts []string) ([]float64, error)
}

// ModerationCategories contains all supported moderation category names
// These are developer-friendly names that map to Google Cloud Natural Language API categories
var ModerationCategories = []string{
	"Toxic",
	"Derogatory",
	"Violent",
	"Sexual",
	"Insult",
	"Profanity",
	"DeathHarmTragedy",
	"FirearmsWeapons",
	"PublicSafety",
	"Health",
	"ReligionBelief",
	"IllicitDrugs",
	"WarConflict",
	"Finance",
	"Politics",
	"Legal",
}

// ModerationCategory represents a safety category with confidence score
type ModerationCategory struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ModerationResult represents the result of content moderation
type ModerationResult struct {
	Categories []ModerationCategory `json:"categories"`
}

// Confidence returns the confidence reported for the named category, or 0
// when the category is absent.
func (r *ModerationResult) Confidence(name string) float64 {
	if r == nil {
		return 0
	}
	for _, c := range r.Categories {
		if c.Name == name {
			return c.Confidence
		}
	}
	return 0
}

// ModerationProvider is an interface for content moderation
// A Google Cloud Natural Language implementation is provided in the gemini subpackage
type ModerationProvider interface {
	// Moderate analyzes content for safety and returns moderation results
	Moderate(ctx context.Context, content string) (*ModerationResult, error)
}
