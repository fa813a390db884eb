package regression

import "github.com/datar-psa/gometrics/api"

// R2Score is the coefficient of determination, 1 - SSE / SST.
type R2Score struct {
	sumSquaredError float64
	sumTarget       float64
	sumTargetSq     float64
	total           int
}

func NewR2Score() *R2Score {
	return &R2Score{}
}

func (m *R2Score) Validate(predictions, targets []float64) error {
	return validatePairs(predictions, targets)
}

func (m *R2Score) Update(predictions, targets []float64) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i := range predictions {
		d := predictions[i] - targets[i]
		m.sumSquaredError += d * d
		m.sumTarget += targets[i]
		m.sumTargetSq += targets[i] * targets[i]
	}
	m.total += len(predictions)
	return nil
}

// Compute is undefined with fewer than two samples or when every target is equal.
func (m *R2Score) Compute() (float64, bool) {
	if m.total < 2 {
		return 0, false
	}
	n := float64(m.total)
	mean := m.sumTarget / n
	sst := m.sumTargetSq - n*mean*mean
	if sst <= 0 {
		return 0, false
	}
	return 1 - m.sumSquaredError/sst, true
}

func (m *R2Score) Reset() {
	*m = R2Score{}
}

var _ api.Metric[float64, float64] = (*R2Score)(nil)
