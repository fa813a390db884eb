package regression

import (
	"fmt"
	"math"
	"strings"

	"github.com/datar-psa/gometrics/api"
)

// Normalization selects the denominator of NormalizedRootMeanSquaredError.
type Normalization int

const (
	// NormalizationMean divides by the mean target.
	NormalizationMean Normalization = iota
	// NormalizationRange divides by max(target) - min(target).
	NormalizationRange
	// NormalizationStd divides by the population standard deviation of the targets.
	NormalizationStd
	// NormalizationL2 divides by the Euclidean norm of the targets.
	NormalizationL2
)

func (n Normalization) String() string {
	switch n {
	case NormalizationMean:
		return "mean"
	case NormalizationRange:
		return "range"
	case NormalizationStd:
		return "std"
	case NormalizationL2:
		return "l2"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization converts a configuration value to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mean":
		return NormalizationMean, nil
	case "range":
		return NormalizationRange, nil
	case "std":
		return NormalizationStd, nil
	case "l2":
		return NormalizationL2, nil
	default:
		return NormalizationMean, fmt.Errorf("%w: unknown normalization %q", api.ErrInvalidConfiguration, s)
	}
}

// NormalizedRootMeanSquaredError is RMSE divided by a statistic of the targets.
// Target mean and variance are tracked with Welford's update.
type NormalizedRootMeanSquaredError struct {
	normalization   Normalization
	sumSquaredError float64
	sumTargetSq     float64
	mean            float64
	m2              float64
	min, max        float64
	total           int
}

func NewNormalizedRootMeanSquaredError(normalization Normalization) (*NormalizedRootMeanSquaredError, error) {
	if normalization < NormalizationMean || normalization > NormalizationL2 {
		return nil, fmt.Errorf("%w: unknown normalization %v", api.ErrInvalidConfiguration, normalization)
	}
	return &NormalizedRootMeanSquaredError{normalization: normalization}, nil
}

func (m *NormalizedRootMeanSquaredError) Validate(predictions, targets []float64) error {
	return validatePairs(predictions, targets)
}

func (m *NormalizedRootMeanSquaredError) Update(predictions, targets []float64) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i, target := range targets {
		d := predictions[i] - target
		m.sumSquaredError += d * d
		m.sumTargetSq += target * target

		if m.total == 0 {
			m.min, m.max = target, target
		} else {
			m.min = min(m.min, target)
			m.max = max(m.max, target)
		}
		m.total++
		delta := target - m.mean
		m.mean += delta / float64(m.total)
		m.m2 += delta * (target - m.mean)
	}
	return nil
}

// Compute is undefined when the normalizing statistic is zero.
func (m *NormalizedRootMeanSquaredError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	var denom float64
	switch m.normalization {
	case NormalizationRange:
		denom = m.max - m.min
	case NormalizationStd:
		denom = math.Sqrt(m.m2 / float64(m.total))
	case NormalizationL2:
		denom = math.Sqrt(m.sumTargetSq)
	default:
		denom = m.mean
	}
	if denom == 0 {
		return 0, false
	}
	return math.Sqrt(m.sumSquaredError/float64(m.total)) / denom, true
}

func (m *NormalizedRootMeanSquaredError) Reset() {
	*m = NormalizedRootMeanSquaredError{normalization: m.normalization}
}

var _ api.Metric[float64, float64] = (*NormalizedRootMeanSquaredError)(nil)
