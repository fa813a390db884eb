package text

import (
	"fmt"
	"strings"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/aggregate"
	"github.com/datar-psa/gometrics/internal/validate"
)

// Overlap selects how ROUGE counts shared tokens between candidate and reference.
type Overlap int

const (
	// OverlapLCS uses the longest common subsequence (ROUGE-L).
	OverlapLCS Overlap = iota
	// OverlapNGram uses clipped n-gram overlap (ROUGE-N).
	OverlapNGram
	// OverlapLCSSum treats each line as a sentence and runs the LCS over the
	// concatenated sentences with a separator token between them (ROUGE-Lsum).
	OverlapLCSSum
)

func (o Overlap) String() string {
	switch o {
	case OverlapLCS:
		return "lcs"
	case OverlapNGram:
		return "ngram"
	case OverlapLCSSum:
		return "lsum"
	default:
		return fmt.Sprintf("Overlap(%d)", int(o))
	}
}

// ParseOverlap converts a configuration value to an Overlap.
func ParseOverlap(s string) (Overlap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lcs", "rougel":
		return OverlapLCS, nil
	case "ngram", "n-gram", "rougen":
		return OverlapNGram, nil
	case "lsum", "rougelsum":
		return OverlapLCSSum, nil
	default:
		return OverlapLCS, fmt.Errorf("%w: unknown overlap %q", api.ErrInvalidConfiguration, s)
	}
}

// RougeOptions configures the ROUGE metric
type RougeOptions struct {
	Overlap Overlap
	// N is the n-gram order for OverlapNGram. Zero selects unigrams.
	N int
}

// Score holds the precision, recall and F1 of one ROUGE variant.
type Score struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// Rouge keeps the running mean of per-pair precision, recall and F1.
type Rouge struct {
	overlap   Overlap
	n         int
	precision aggregate.Aggregator
	recall    aggregate.Aggregator
	f1        aggregate.Aggregator
}

// NewRouge creates a ROUGE metric.
func NewRouge(opts RougeOptions) (*Rouge, error) {
	if opts.Overlap < OverlapLCS || opts.Overlap > OverlapLCSSum {
		return nil, fmt.Errorf("%w: unknown overlap %v", api.ErrInvalidConfiguration, opts.Overlap)
	}
	n := opts.N
	if n == 0 {
		n = 1
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", api.ErrInvalidConfiguration, opts.N)
	}
	return &Rouge{overlap: opts.Overlap, n: n}, nil
}

func (m *Rouge) Validate(candidates []string, references []string) error {
	return validate.Batch(len(candidates), len(references))
}

func (m *Rouge) Update(candidates []string, references []string) error {
	if err := m.Validate(candidates, references); err != nil {
		return err
	}
	tokenize := Tokenize
	if m.overlap == OverlapLCSSum {
		tokenize = tokenizeLines
	}
	for i := range candidates {
		s := m.score(tokenize(candidates[i]), tokenize(references[i]))
		m.precision.Add(s.Precision)
		m.recall.Add(s.Recall)
		m.f1.Add(s.F1)
	}
	return nil
}

func (m *Rouge) score(candidate, reference []string) Score {
	var overlap, candTotal, refTotal int
	switch m.overlap {
	case OverlapNGram:
		cand := countNgrams(candidate, m.n)
		overlap = clippedOverlap(cand, countNgrams(reference, m.n))
		candTotal = max(len(candidate)-m.n+1, 0)
		refTotal = max(len(reference)-m.n+1, 0)
	default:
		overlap = lcsLength(candidate, reference)
		candTotal = len(candidate)
		refTotal = len(reference)
	}

	var s Score
	if candTotal > 0 {
		s.Precision = float64(overlap) / float64(candTotal)
	}
	if refTotal > 0 {
		s.Recall = float64(overlap) / float64(refTotal)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// sentenceSeparator marks a line break in ROUGE-Lsum token streams. Tokenize
// never yields it, so it only matches another separator.
const sentenceSeparator = "\n"

// tokenizeLines tokenizes every non-blank line of s and joins the lines with
// sentenceSeparator.
func tokenizeLines(s string) []string {
	var tokens []string
	for line := range strings.SplitSeq(s, "\n") {
		words := Tokenize(line)
		if len(words) == 0 {
			continue
		}
		if len(tokens) > 0 {
			tokens = append(tokens, sentenceSeparator)
		}
		tokens = append(tokens, words...)
	}
	return tokens
}

// lcsLength is the length of the longest common subsequence of a and b.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := range a {
		for j := range b {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
			} else {
				curr[j+1] = max(prev[j+1], curr[j])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Compute returns the mean F1 over all pairs seen.
func (m *Rouge) Compute() (float64, bool) {
	return m.f1.Compute()
}

// ComputeScore returns the mean precision, recall and F1 over all pairs seen.
func (m *Rouge) ComputeScore() (Score, bool) {
	f1, ok := m.f1.Compute()
	if !ok {
		return Score{}, false
	}
	p, _ := m.precision.Compute()
	r, _ := m.recall.Compute()
	return Score{Precision: p, Recall: r, F1: f1}, true
}

func (m *Rouge) Reset() {
	m.precision.Reset()
	m.recall.Reset()
	m.f1.Reset()
}

var _ api.Metric[string, string] = (*Rouge)(nil)
