package classification

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/validate"
)

// AUROCOptions configures NewAUROC
type AUROCOptions struct {
	// BinCount selects the mode: 0 computes the exact AUROC over every
	// retained sample, k > 0 approximates it with k fixed score bins.
	BinCount int
	// Min and Max bound the scores in binned mode. Both zero selects [0, 1].
	Min, Max float64
}

// NewAUROC returns an exact or binned AUROC depending on opts.BinCount.
func NewAUROC(opts AUROCOptions) (api.Metric[float64, int], error) {
	switch {
	case opts.BinCount < 0:
		return nil, fmt.Errorf("%w: bin_count must not be negative, got %d", api.ErrInvalidConfiguration, opts.BinCount)
	case opts.BinCount == 0:
		return NewExactAUROC(), nil
	default:
		return NewBinnedAUROC(opts)
	}
}

type scoredLabel struct {
	score    float64
	positive bool
}

// ExactAUROC retains every (score, label) pair seen since the last reset, so
// its memory grows linearly with the number of samples.
type ExactAUROC struct {
	samples   []scoredLabel
	positives int
	negatives int
}

// NewExactAUROC creates an exact AUROC.
func NewExactAUROC() *ExactAUROC {
	return &ExactAUROC{}
}

// Validate checks scores are finite and targets are 0 or 1.
func (m *ExactAUROC) Validate(predictions []float64, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Finite(i, predictions[i]); err != nil {
			return err
		}
		if err := validate.BinaryLabel(i, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *ExactAUROC) Update(predictions []float64, targets []int) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	m.samples = slices.Grow(m.samples, len(predictions))
	for i, s := range predictions {
		positive := targets[i] == 1
		m.samples = append(m.samples, scoredLabel{score: s, positive: positive})
		if positive {
			m.positives++
		} else {
			m.negatives++
		}
	}
	return nil
}

// Compute sweeps the threshold from the highest score down. Samples sharing a
// score cross the threshold together as one diagonal step. It returns false
// until both classes have been seen.
func (m *ExactAUROC) Compute() (float64, bool) {
	if m.positives == 0 || m.negatives == 0 {
		return 0, false
	}
	sorted := slices.Clone(m.samples)
	slices.SortFunc(sorted, func(a, b scoredLabel) int {
		return cmp.Compare(b.score, a.score)
	})

	var area float64
	tp, fp := 0, 0
	for i := 0; i < len(sorted); {
		prevTP, prevFP := tp, fp
		j := i
		for ; j < len(sorted) && sorted[j].score == sorted[i].score; j++ {
			if sorted[j].positive {
				tp++
			} else {
				fp++
			}
		}
		area += float64(fp-prevFP) * float64(tp+prevTP) / 2
		i = j
	}
	return area / (float64(m.positives) * float64(m.negatives)), true
}

func (m *ExactAUROC) Reset() {
	m.samples = nil
	m.positives = 0
	m.negatives = 0
}

// BinnedAUROC counts positives and negatives per fixed score bin, so memory is
// bounded by the bin count. Scores within one bin are treated as tied, which
// makes the result an approximation that tightens as the bin count grows.
type BinnedAUROC struct {
	lo, hi    float64
	positives []int
	negatives []int
}

// NewBinnedAUROC creates a binned AUROC with opts.BinCount equal-width bins
// over [opts.Min, opts.Max].
func NewBinnedAUROC(opts AUROCOptions) (*BinnedAUROC, error) {
	if opts.BinCount < 1 {
		return nil, fmt.Errorf("%w: binned AUROC needs at least 1 bin, got %d", api.ErrInvalidConfiguration, opts.BinCount)
	}
	lo, hi := opts.Min, opts.Max
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: score range [%v, %v] is empty", api.ErrInvalidConfiguration, lo, hi)
	}
	return &BinnedAUROC{
		lo:        lo,
		hi:        hi,
		positives: make([]int, opts.BinCount),
		negatives: make([]int, opts.BinCount),
	}, nil
}

// Thresholds returns the k+1 bin boundaries in ascending order.
func (m *BinnedAUROC) Thresholds() []float64 {
	k := len(m.positives)
	out := make([]float64, k+1)
	width := (m.hi - m.lo) / float64(k)
	for i := range out {
		out[i] = m.lo + float64(i)*width
	}
	out[k] = m.hi
	return out
}

// Validate checks scores fall in the configured range and targets are 0 or 1.
func (m *BinnedAUROC) Validate(predictions []float64, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Range(i, predictions[i], m.lo, m.hi); err != nil {
			return err
		}
		if err := validate.BinaryLabel(i, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *BinnedAUROC) Update(predictions []float64, targets []int) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i, s := range predictions {
		b := m.bin(s)
		if targets[i] == 1 {
			m.positives[b]++
		} else {
			m.negatives[b]++
		}
	}
	return nil
}

func (m *BinnedAUROC) bin(score float64) int {
	k := len(m.positives)
	b := int((score - m.lo) / (m.hi - m.lo) * float64(k))
	return min(max(b, 0), k-1)
}

// Compute integrates the ROC curve through the bin boundaries, from the top
// bin down. It returns false until both classes have been seen.
func (m *BinnedAUROC) Compute() (float64, bool) {
	var totalPos, totalNeg int
	for b := range m.positives {
		totalPos += m.positives[b]
		totalNeg += m.negatives[b]
	}
	if totalPos == 0 || totalNeg == 0 {
		return 0, false
	}

	var area float64
	tp, fp := 0, 0
	for b := len(m.positives) - 1; b >= 0; b-- {
		prevTP, prevFP := tp, fp
		tp += m.positives[b]
		fp += m.negatives[b]
		area += float64(fp-prevFP) * float64(tp+prevTP) / 2
	}
	return area / (float64(totalPos) * float64(totalNeg)), true
}

func (m *BinnedAUROC) Reset() {
	clear(m.positives)
	clear(m.negatives)
}

var (
	_ api.Metric[float64, int] = (*ExactAUROC)(nil)
	_ api.Metric[float64, int] = (*BinnedAUROC)(nil)
)
