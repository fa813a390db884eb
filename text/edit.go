package text

import (
	"fmt"
	"strings"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/aggregate"
	"github.com/datar-psa/gometrics/internal/validate"
)

// Level selects the unit edit distance operates on.
type Level int

const (
	// LevelCharacter compares Unicode code points.
	LevelCharacter Level = iota
	// LevelWord compares whitespace separated tokens.
	LevelWord
)

func (l Level) String() string {
	switch l {
	case LevelCharacter:
		return "character"
	case LevelWord:
		return "word"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel converts a configuration value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "char", "character":
		return LevelCharacter, nil
	case "word":
		return LevelWord, nil
	default:
		return LevelCharacter, fmt.Errorf("%w: unknown level %q", api.ErrInvalidConfiguration, s)
	}
}

// EditDistanceOptions configures the EditDistance metric
type EditDistanceOptions struct {
	// Reduction combines per-pair distances. The zero value is the mean.
	Reduction api.Reduction
	Level     Level
}

// EditDistance accumulates the Levenshtein distance between each candidate
// and its reference.
type EditDistance struct {
	level     Level
	distances aggregate.Aggregator
}

// NewEditDistance creates an edit distance metric.
func NewEditDistance(opts EditDistanceOptions) (*EditDistance, error) {
	if !opts.Reduction.Valid() {
		return nil, fmt.Errorf("%w: unknown reduction %v", api.ErrInvalidConfiguration, opts.Reduction)
	}
	if opts.Level != LevelCharacter && opts.Level != LevelWord {
		return nil, fmt.Errorf("%w: unknown level %v", api.ErrInvalidConfiguration, opts.Level)
	}
	return &EditDistance{level: opts.Level, distances: aggregate.New(opts.Reduction)}, nil
}

func (m *EditDistance) Validate(candidates []string, references []string) error {
	return validate.Batch(len(candidates), len(references))
}

func (m *EditDistance) Update(candidates []string, references []string) error {
	if err := m.Validate(candidates, references); err != nil {
		return err
	}
	for i := range candidates {
		var d int
		if m.level == LevelWord {
			d = Levenshtein(Tokenize(candidates[i]), Tokenize(references[i]))
		} else {
			d = Levenshtein([]rune(candidates[i]), []rune(references[i]))
		}
		m.distances.Add(float64(d))
	}
	return nil
}

func (m *EditDistance) Compute() (float64, bool) {
	return m.distances.Compute()
}

func (m *EditDistance) Reset() {
	m.distances.Reset()
}

// Levenshtein returns the minimum number of single element insertions,
// deletions and substitutions turning a into b.
func Levenshtein[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := range a {
		curr[0] = i + 1
		for j := range b {
			cost := 1
			if a[i] == b[j] {
				cost = 0
			}
			curr[j+1] = min(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

var _ api.Metric[string, string] = (*EditDistance)(nil)
