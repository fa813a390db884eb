package classification

import (
	"fmt"
	"math"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/aggregate"
	"github.com/datar-psa/gometrics/internal/validate"
)

// HingeOptions configures the hinge losses
type HingeOptions struct {
	// Squared squares each per-sample loss.
	Squared bool
}

// BinaryHingeLoss is the mean of max(0, 1 - y*s) over raw margins s and
// targets y in {-1, +1}.
type BinaryHingeLoss struct {
	squared bool
	losses  aggregate.Aggregator
}

// NewBinaryHingeLoss creates a binary hinge loss.
func NewBinaryHingeLoss(opts HingeOptions) *BinaryHingeLoss {
	return &BinaryHingeLoss{squared: opts.Squared, losses: aggregate.New(api.ReductionMean)}
}

// Validate checks margins are finite and targets are -1 or +1.
func (m *BinaryHingeLoss) Validate(predictions []float64, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Finite(i, predictions[i]); err != nil {
			return err
		}
		if err := validate.SignLabel(i, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *BinaryHingeLoss) Update(predictions []float64, targets []int) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i, s := range predictions {
		m.losses.Add(hinge(float64(targets[i])*s, m.squared))
	}
	return nil
}

func (m *BinaryHingeLoss) Compute() (float64, bool) {
	return m.losses.Compute()
}

func (m *BinaryHingeLoss) Reset() {
	m.losses.Reset()
}

// MulticlassHingeLoss is the Crammer-Singer hinge loss: for each sample the
// margin is the target score minus the best competing score.
type MulticlassHingeLoss struct {
	numClasses int
	squared    bool
	losses     aggregate.Aggregator
}

// NewMulticlassHingeLoss creates a multiclass hinge loss over numClasses score columns.
func NewMulticlassHingeLoss(numClasses int, opts HingeOptions) (*MulticlassHingeLoss, error) {
	if numClasses < 2 {
		return nil, fmt.Errorf("%w: num_classes must be at least 2, got %d", api.ErrInvalidConfiguration, numClasses)
	}
	return &MulticlassHingeLoss{
		numClasses: numClasses,
		squared:    opts.Squared,
		losses:     aggregate.New(api.ReductionMean),
	}, nil
}

// Validate checks score rows and target classes.
func (m *MulticlassHingeLoss) Validate(predictions [][]float64, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Row(i, predictions[i], m.numClasses); err != nil {
			return err
		}
		if err := validate.Label(i, targets[i], m.numClasses); err != nil {
			return err
		}
	}
	return nil
}

func (m *MulticlassHingeLoss) Update(predictions [][]float64, targets []int) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i, row := range predictions {
		y := targets[i]
		rival := math.Inf(-1)
		for c, s := range row {
			if c != y && s > rival {
				rival = s
			}
		}
		m.losses.Add(hinge(row[y]-rival, m.squared))
	}
	return nil
}

func (m *MulticlassHingeLoss) Compute() (float64, bool) {
	return m.losses.Compute()
}

func (m *MulticlassHingeLoss) Reset() {
	m.losses.Reset()
}

func hinge(margin float64, squared bool) float64 {
	loss := max(0, 1-margin)
	if squared {
		loss *= loss
	}
	return loss
}

var (
	_ api.Metric[float64, int]   = (*BinaryHingeLoss)(nil)
	_ api.Metric[[]float64, int] = (*MulticlassHingeLoss)(nil)
)
