// Package clustering implements metrics that compare two label assignments
// without requiring the label values to correspond.
package clustering

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/validate"
)

type labelPair struct {
	target, prediction int
}

// MutualInfoScore is the mutual information, in nats, between predicted and
// target cluster labels. Only label counts are kept, so memory is bounded by
// the number of distinct labels.
type MutualInfoScore struct {
	targets     map[int]int
	predictions map[int]int
	joint       map[labelPair]int
	total       int
}

func NewMutualInfoScore() *MutualInfoScore {
	return &MutualInfoScore{
		targets:     map[int]int{},
		predictions: map[int]int{},
		joint:       map[labelPair]int{},
	}
}

func (m *MutualInfoScore) Validate(predictions, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if predictions[i] < 0 || targets[i] < 0 {
			return fmt.Errorf("%w: negative cluster label at index %d", api.ErrInvalidLabel, i)
		}
	}
	return nil
}

func (m *MutualInfoScore) Update(predictions, targets []int) error {
	if err := m.Validate(predictions, targets); err != nil {
		return err
	}
	for i := range predictions {
		m.predictions[predictions[i]]++
		m.targets[targets[i]]++
		m.joint[labelPair{target: targets[i], prediction: predictions[i]}]++
	}
	m.total += len(predictions)
	return nil
}

// Compute returns H(target) + H(prediction) - H(target, prediction).
func (m *MutualInfoScore) Compute() (float64, bool) {
	if m.total == 0 {
		return 0, false
	}
	mi := entropy(m.targets, m.total) + entropy(m.predictions, m.total) - entropy(m.joint, m.total)
	return max(mi, 0), true
}

// entropy sorts the probabilities first so that the result does not depend on
// map iteration order.
func entropy[K comparable](counts map[K]int, total int) float64 {
	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		p = append(p, float64(c)/float64(total))
	}
	slices.Sort(p)
	return stat.Entropy(p)
}

func (m *MutualInfoScore) Reset() {
	clear(m.targets)
	clear(m.predictions)
	clear(m.joint)
	m.total = 0
}

var _ api.Metric[int, int] = (*MutualInfoScore)(nil)
