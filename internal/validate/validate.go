// Package validate holds the batch and value checks shared by all metrics.
// Every check runs before a metric mutates its state.
package validate

import (
	"fmt"
	"math"

	"github.com/datar-psa/gometrics/api"
)

// Batch checks that a batch is non-empty and that both sides have the same length.
func Batch(predictions, targets int) error {
	if predictions != targets {
		return fmt.Errorf("%w: predictions=%d targets=%d", api.ErrLengthMismatch, predictions, targets)
	}
	if predictions == 0 {
		return api.ErrEmptyInput
	}
	return nil
}

// Finite rejects NaN and infinities.
func Finite(i int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value %v at index %d is not finite", api.ErrInvalidValue, v, i)
	}
	return nil
}

// Range checks that v is finite and within [lo, hi].
func Range(i int, v, lo, hi float64) error {
	if err := Finite(i, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: value %v at index %d outside [%v, %v]", api.ErrInvalidValue, v, i, lo, hi)
	}
	return nil
}

// Probability checks that v is a finite value in [0, 1].
func Probability(i int, v float64) error {
	return Range(i, v, 0, 1)
}

// Label checks that label is a class index in [0, numClasses).
func Label(i, label, numClasses int) error {
	if label < 0 || label >= numClasses {
		return fmt.Errorf("%w: label %d at index %d outside [0, %d)", api.ErrInvalidLabel, label, i, numClasses)
	}
	return nil
}

// BinaryLabel checks that label is 0 or 1.
func BinaryLabel(i, label int) error {
	return Label(i, label, 2)
}

// SignLabel checks that label is -1 or +1.
func SignLabel(i, label int) error {
	if label != -1 && label != 1 {
		return fmt.Errorf("%w: label %d at index %d must be -1 or 1", api.ErrInvalidLabel, label, i)
	}
	return nil
}

// Row checks that a score row has one finite entry per class.
func Row(i int, row []float64, numClasses int) error {
	if len(row) != numClasses {
		return fmt.Errorf("%w: score row at index %d has %d entries, want %d", api.ErrInvalidValue, i, len(row), numClasses)
	}
	for _, v := range row {
		if err := Finite(i, v); err != nil {
			return err
		}
	}
	return nil
}
