package gemini

import "log/slog"

// Option configures the Gemini and Cloud Natural Language adapters.
type Option func(*config)

type config struct {
	logger               *slog.Logger
	taskType             string
	outputDimensionality int32
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTaskType sets the embedding task type, e.g. "SEMANTIC_SIMILARITY"
// (default: the model's own default).
func WithTaskType(taskType string) Option {
	return func(c *config) {
		c.taskType = taskType
	}
}

// WithOutputDimensionality truncates embeddings to n dimensions (default: full size).
func WithOutputDimensionality(n int32) Option {
	return func(c *config) {
		if n > 0 {
			c.outputDimensionality = n
		}
	}
}
