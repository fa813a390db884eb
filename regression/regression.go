// Package regression implements error metrics for continuous predictions.
// Every metric keeps running sums only, so memory does not grow with the
// number of samples.
package regression

import (
	"math"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/validate"
)

func validatePairs(predictions, targets []float64) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Finite(i, predictions[i]); err != nil {
			return err
		}
		if err := validate.Finite(i, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

// MeanSquaredError is the mean of (prediction - target)^2.
type MeanSquaredError struct {
	sumSquaredError float64
	total           int
}

func NewMeanSquaredError() *MeanSquaredError {
	return &MeanSquaredError{}
}

func (m *MeanSquaredError) Validate(predictions, targets []float64) error {
	return validatePairs(predictions, targets)
}

func (m *MeanSquaredError) Update(predictions, targets []float64) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i := range predictions {
		d := predictions[i] - targets[i]
		m.sumSquaredError += d * d
	}
	m.total += len(predictions)
	return nil
}

func (m *MeanSquaredError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumSquaredError / float64(m.total), true
}

func (m *MeanSquaredError) Reset() {
	*m = MeanSquaredError{}
}

// MeanAbsoluteError is the mean of |prediction - target|.
type MeanAbsoluteError struct {
	sumAbsError float64
	total       int
}

func NewMeanAbsoluteError() *MeanAbsoluteError {
	return &MeanAbsoluteError{}
}

func (m *MeanAbsoluteError) Validate(predictions, targets []float64) error {
	return validatePairs(predictions, targets)
}

func (m *MeanAbsoluteError) Update(predictions, targets []float64) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i := range predictions {
		m.sumAbsError += math.Abs(predictions[i] - targets[i])
	}
	m.total += len(predictions)
	return nil
}

func (m *MeanAbsoluteError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumAbsError / float64(m.total), true
}

func (m *MeanAbsoluteError) Reset() {
	*m = MeanAbsoluteError{}
}

// MeanAbsolutePercentageError is the mean of |prediction - target| / |target|
// as a fraction. Pairs with a zero target are skipped.
type MeanAbsolutePercentageError struct {
	sumRelError float64
	total       int
}

func NewMeanAbsolutePercentageError() *MeanAbsolutePercentageError {
	return &MeanAbsolutePercentageError{}
}

func (m *MeanAbsolutePercentageError) Validate(predictions, targets []float64) error {
	return validatePairs(predictions, targets)
}

func (m *MeanAbsolutePercentageError) Update(predictions, targets []float64) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i := range predictions {
		if targets[i] == 0 {
			continue
		}
		m.sumRelError += math.Abs(predictions[i]-targets[i]) / math.Abs(targets[i])
		m.total++
	}
	return nil
}

// Compute returns false until a pair with a non-zero target has been seen.
func (m *MeanAbsolutePercentageError) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	return m.sumRelError / float64(m.total), true
}

func (m *MeanAbsolutePercentageError) Reset() {
	*m = MeanAbsolutePercentageError{}
}

var (
	_ api.Metric[float64, float64] = (*MeanSquaredError)(nil)
	_ api.Metric[float64, float64] = (*MeanAbsoluteError)(nil)
	_ api.Metric[float64, float64] = (*MeanAbsolutePercentageError)(nil)
)
