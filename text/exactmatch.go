package text

import (
	"strings"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/aggregate"
	"github.com/datar-psa/gometrics/internal/validate"
)

// ExactMatchOptions configures the ExactMatch metric
type ExactMatchOptions struct {
	// CaseInsensitive determines if the comparison should ignore case
	CaseInsensitive bool
	// TrimWhitespace determines if leading and trailing whitespace should be trimmed
	TrimWhitespace bool
}

// ExactMatch is the fraction of candidates equal to their reference.
type ExactMatch struct {
	opts    ExactMatchOptions
	matches aggregate.Aggregator
}

// NewExactMatch creates an exact match metric.
func NewExactMatch(opts ExactMatchOptions) *ExactMatch {
	return &ExactMatch{opts: opts}
}

func (m *ExactMatch) Validate(candidates []string, references []string) error {
	return validate.Batch(len(candidates), len(references))
}

func (m *ExactMatch) Update(candidates []string, references []string) error {
	if err := m.Validate(candidates, references); err != nil {
		return err
	}
	for i := range candidates {
		if m.normalize(candidates[i]) == m.normalize(references[i]) {
			m.matches.Add(1)
		} else {
			m.matches.Add(0)
		}
	}
	return nil
}

func (m *ExactMatch) normalize(s string) string {
	if m.opts.TrimWhitespace {
		s = strings.TrimSpace(s)
	}
	if m.opts.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return s
}

func (m *ExactMatch) Compute() (float64, bool) {
	return m.matches.Compute()
}

func (m *ExactMatch) Reset() {
	m.matches.Reset()
}

var _ api.Metric[string, string] = (*ExactMatch)(nil)
