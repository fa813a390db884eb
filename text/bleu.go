package text

import (
	"fmt"
	"math"
	"strings"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/validate"
)

const (
	// DefaultMaxN is the highest n-gram order used when BleuOptions.MaxN is zero.
	DefaultMaxN = 4
	// DefaultEpsilon is the additive smoothing constant used when BleuOptions.Epsilon is zero.
	DefaultEpsilon = 0.1
)

// Smoothing selects how BLEU treats n-gram orders without any clipped match.
type Smoothing int

const (
	// SmoothingNone scores 0 as soon as one order has no match.
	SmoothingNone Smoothing = iota
	// SmoothingAdditive replaces a zero precision with epsilon / candidate n-gram count.
	SmoothingAdditive
	// SmoothingExponential gives the i-th order without a match the precision
	// 1 / (2^i * candidate n-gram count).
	SmoothingExponential
	// SmoothingAddOne adds one to numerator and denominator of every order above 1.
	SmoothingAddOne
)

func (s Smoothing) String() string {
	switch s {
	case SmoothingNone:
		return "none"
	case SmoothingAdditive:
		return "additive"
	case SmoothingExponential:
		return "exponential"
	case SmoothingAddOne:
		return "add_one"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing converts a configuration value to a Smoothing.
func ParseSmoothing(s string) (Smoothing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SmoothingNone, nil
	case "additive", "epsilon":
		return SmoothingAdditive, nil
	case "exponential":
		return SmoothingExponential, nil
	case "add_one", "add-one":
		return SmoothingAddOne, nil
	default:
		return SmoothingNone, fmt.Errorf("%w: unknown smoothing %q", api.ErrInvalidConfiguration, s)
	}
}

// BleuOptions configures the BLEU metric
type BleuOptions struct {
	// MaxN is the highest n-gram order. Zero selects DefaultMaxN.
	MaxN int
	// Smoothing applies to orders without any clipped match.
	Smoothing Smoothing
	// Epsilon is the SmoothingAdditive constant. Zero selects DefaultEpsilon.
	Epsilon float64
}

// Bleu is corpus-level BLEU: clipped n-gram counts and lengths are summed over
// every pair seen, and the precisions are derived from the sums at Compute.
type Bleu struct {
	maxN         int
	smoothing    Smoothing
	epsilon      float64
	numerators   []int
	denominators []int
	candidateLen int
	referenceLen int
	pairs        int
}

// NewBleu creates a BLEU metric.
func NewBleu(opts BleuOptions) (*Bleu, error) {
	maxN := opts.MaxN
	if maxN == 0 {
		maxN = DefaultMaxN
	}
	if maxN < 1 {
		return nil, fmt.Errorf("%w: max_n must be positive, got %d", api.ErrInvalidConfiguration, opts.MaxN)
	}
	if opts.Smoothing < SmoothingNone || opts.Smoothing > SmoothingAddOne {
		return nil, fmt.Errorf("%w: unknown smoothing %v", api.ErrInvalidConfiguration, opts.Smoothing)
	}
	epsilon := opts.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}
	if epsilon < 0 {
		return nil, fmt.Errorf("%w: epsilon must be positive, got %v", api.ErrInvalidConfiguration, opts.Epsilon)
	}
	return &Bleu{
		maxN:         maxN,
		smoothing:    opts.Smoothing,
		epsilon:      epsilon,
		numerators:   make([]int, maxN),
		denominators: make([]int, maxN),
	}, nil
}

// Validate checks a batch with one reference per candidate.
func (m *Bleu) Validate(candidates []string, references []string) error {
	return validate.Batch(len(candidates), len(references))
}

// Update adds candidates paired with a single reference each.
func (m *Bleu) Update(candidates []string, references []string) error {
	if err := m.Validate(candidates, references); err != nil {
		return err
	}
	multi := make([][]string, len(references))
	for i, r := range references {
		multi[i] = []string{r}
	}
	return m.UpdateMulti(candidates, multi)
}

// ValidateMulti checks a batch where every candidate has one or more references.
func (m *Bleu) ValidateMulti(candidates []string, references [][]string) error {
	if err := validate.Batch(len(candidates), len(references)); err != nil {
		return err
	}
	for i, refs := range references {
		if len(refs) == 0 {
			return fmt.Errorf("%w: candidate %d has no reference", api.ErrEmptyInput, i)
		}
	}
	return nil
}

// UpdateMulti adds candidates paired with any number of references. Counts
// are clipped by the maximum count in any reference, and the brevity penalty
// uses the reference closest in length (the shorter one on a tie).
func (m *Bleu) UpdateMulti(candidates []string, references [][]string) error {
	if err := m.ValidateMulti(candidates, references); err != nil {
		return err
	}
	for i, candidate := range candidates {
		candTokens := Tokenize(candidate)
		refTokens := make([][]string, len(references[i]))
		for j, r := range references[i] {
			refTokens[j] = Tokenize(r)
		}

		m.candidateLen += len(candTokens)
		m.referenceLen += closestLength(len(candTokens), refTokens)

		for n := 1; n <= m.maxN; n++ {
			candCounts := countNgrams(candTokens, n)
			maxRef := map[string]int{}
			for _, ref := range refTokens {
				for gram, c := range countNgrams(ref, n) {
					maxRef[gram] = max(maxRef[gram], c)
				}
			}
			m.numerators[n-1] += clippedOverlap(candCounts, maxRef)
			m.denominators[n-1] += max(len(candTokens)-n+1, 0)
		}
		m.pairs++
	}
	return nil
}

func closestLength(candLen int, refs [][]string) int {
	best := len(refs[0])
	for _, ref := range refs[1:] {
		d, bestD := abs(len(ref)-candLen), abs(best-candLen)
		if d < bestD || (d == bestD && len(ref) < best) {
			best = len(ref)
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Compute returns brevity_penalty * exp(mean log precision_n).
func (m *Bleu) Compute() (float64, bool) {
	if m.pairs == 0 {
		return 0, false
	}
	if m.candidateLen == 0 {
		return 0, true
	}

	var logSum float64
	decay := 1.0
	for i := range m.maxN {
		num := float64(m.numerators[i])
		den := float64(m.denominators[i])
		var p float64
		switch {
		case m.smoothing == SmoothingAddOne && i > 0:
			p = (num + 1) / (den + 1)
		case num > 0:
			p = num / den
		case m.smoothing == SmoothingAdditive:
			p = m.epsilon / max(den, 1)
		case m.smoothing == SmoothingExponential:
			decay *= 2
			p = 1 / (decay * max(den, 1))
		default:
			return 0, true
		}
		logSum += math.Log(p)
	}

	c, r := float64(m.candidateLen), float64(m.referenceLen)
	bp := 1.0
	if c < r {
		bp = math.Exp(1 - r/c)
	}
	return bp * math.Exp(logSum/float64(m.maxN)), true
}

// Precisions returns the unsmoothed corpus precision of each order; orders
// without candidate n-grams report 0.
func (m *Bleu) Precisions() []float64 {
	out := make([]float64, m.maxN)
	for i := range out {
		if m.denominators[i] > 0 {
			out[i] = float64(m.numerators[i]) / float64(m.denominators[i])
		}
	}
	return out
}

func (m *Bleu) Reset() {
	clear(m.numerators)
	clear(m.denominators)
	m.candidateLen = 0
	m.referenceLen = 0
	m.pairs = 0
}

var _ api.Metric[string, string] = (*Bleu)(nil)
