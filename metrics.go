// Package gometrics is an incremental evaluation-metrics engine. Metrics live
// in the classification, regression, clustering, text and embedding packages;
// this package re-exports the shared types and offers convenience
// constructors for the metrics that depend on external models.
package gometrics

import (
	"log/slog"

	language "cloud.google.com/go/language/apiv1"
	"google.golang.org/genai"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/embedding"
	"github.com/datar-psa/gometrics/gemini"
	"github.com/datar-psa/gometrics/suite"
	"github.com/datar-psa/gometrics/text"
)

// GeminiOptions configures the Google-backed constructors
type GeminiOptions struct {
	genaiClient *genai.Client
	modelName   string
	langClient  *language.Client
	logger      *slog.Logger
}

// WithGenaiClient sets the Gemini client used for embeddings
func WithGenaiClient(client *genai.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.genaiClient = client
	}
}

// WithModelName sets the embedding model name
func WithModelName(modelName string) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.modelName = modelName
	}
}

// WithLanguageClient sets the Google Cloud Language client for moderation
func WithLanguageClient(langClient *language.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.langClient = langClient
	}
}

// WithGeminiLogger sets the logger of the Gemini and Cloud Language adapters
func WithGeminiLogger(logger *slog.Logger) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.logger = logger
	}
}

func (o *GeminiOptions) adapterOptions() []gemini.Option {
	if o.logger == nil {
		return nil
	}
	return []gemini.Option{gemini.WithLogger(o.logger)}
}

// Embedding wraps an embedder and exposes convenient constructors for embedding-based metrics.
type Embedding struct{ embedder api.Embedder }

// EmbeddingOptions configures Embedding creation
type EmbeddingOptions struct {
	embedder api.Embedder
}

// WithEmbedder sets the embedder for the embedding metrics
func WithEmbedder(embedder api.Embedder) func(*EmbeddingOptions) {
	return func(opts *EmbeddingOptions) {
		opts.embedder = embedder
	}
}

// NewEmbedding creates a new Embedding wrapper using functional options.
func NewEmbedding(opts ...func(*EmbeddingOptions)) *Embedding {
	options := &EmbeddingOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &Embedding{embedder: options.embedder}
}

// NewGeminiEmbedding creates an Embedding using Gemini client and model name.
// Example model: "text-embedding-005".
func NewGeminiEmbedding(opts ...func(*GeminiOptions)) *Embedding {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var embeddingOptions []func(*EmbeddingOptions)

	// Only add embedder if genaiClient and modelName are provided
	if options.genaiClient != nil && options.modelName != "" {
		embedder := gemini.NewEmbedder(options.genaiClient, options.modelName, options.adapterOptions()...)
		embeddingOptions = append(embeddingOptions, WithEmbedder(embedder))
	}

	return NewEmbedding(embeddingOptions...)
}

type SentenceSimilarityOptions = embedding.SentenceSimilarityOptions

// SentenceSimilarity returns a metric of the cosine similarity between prediction and target embeddings.
// It fails with ErrInvalidConfiguration when no embedder was configured.
func (e *Embedding) SentenceSimilarity(opts SentenceSimilarityOptions) (*embedding.SentenceSimilarity, error) {
	return embedding.NewSentenceSimilarity(e.embedder, opts)
}

// Moderation wraps a moderation provider and exposes it as per-category score sources.
type Moderation struct {
	provider api.ModerationProvider
	opts     []gemini.Option
}

// NewModeration creates a Moderation over any provider.
// Only WithGeminiLogger is relevant among opts.
func NewModeration(provider api.ModerationProvider, opts ...func(*GeminiOptions)) *Moderation {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &Moderation{provider: provider, opts: options.adapterOptions()}
}

// NewGeminiModeration creates a Moderation backed by the Google Cloud Natural Language API.
func NewGeminiModeration(opts ...func(*GeminiOptions)) *Moderation {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Only add provider if langClient is provided
	if options.langClient == nil {
		return &Moderation{opts: options.adapterOptions()}
	}
	return &Moderation{
		provider: gemini.NewGoogleLanguageProvider(options.langClient, options.adapterOptions()...),
		opts:     options.adapterOptions(),
	}
}

// Scores returns a score source reporting the confidence of one of ModerationCategories.
func (m *Moderation) Scores(category string) (*gemini.ModerationScorer, error) {
	return gemini.NewModerationScorer(m.provider, category, m.opts...)
}

// Text exposes convenient constructors for the reference-based text metrics.
type Text struct{}

// NewText creates a new Text.
func NewText() *Text {
	return &Text{}
}

type (
	BleuOptions         = text.BleuOptions
	RougeOptions        = text.RougeOptions
	EditDistanceOptions = text.EditDistanceOptions
	ExactMatchOptions   = text.ExactMatchOptions
)

// Bleu returns a corpus-level BLEU metric.
func (t *Text) Bleu(opts BleuOptions) (*text.Bleu, error) {
	return text.NewBleu(opts)
}

// Rouge returns a ROUGE-N or ROUGE-L metric.
func (t *Text) Rouge(opts RougeOptions) (*text.Rouge, error) {
	return text.NewRouge(opts)
}

// EditDistance returns a Levenshtein distance metric.
func (t *Text) EditDistance(opts EditDistanceOptions) (*text.EditDistance, error) {
	return text.NewEditDistance(opts)
}

// ExactMatch returns a metric that checks if the output exactly matches the expected value.
func (t *Text) ExactMatch(opts ExactMatchOptions) *text.ExactMatch {
	return text.NewExactMatch(opts)
}

// LoadSuite reads a YAML suite configuration from path and builds it.
func LoadSuite(path string, opts ...suite.Option) (*suite.Suite, error) {
	cfg, err := suite.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return suite.Build(cfg, opts...)
}
