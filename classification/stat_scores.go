// Package classification implements confusion-matrix based metrics, hinge
// losses and ROC-AUC for binary and multiclass problems.
//
// All metrics accumulate sufficient statistics across Update calls and are
// not safe for concurrent use.
package classification

import (
	"fmt"
	"math"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/internal/validate"
)

// DefaultThreshold is the decision threshold used when BinaryOptions.Threshold is nil.
const DefaultThreshold = 0.5

// BinaryOptions configures the binary confusion-matrix metrics
type BinaryOptions struct {
	// Threshold maps a score to the positive class when score >= Threshold.
	// Nil selects DefaultThreshold; 0 marks every score positive.
	Threshold *float64
}

func (o BinaryOptions) threshold() (float64, error) {
	if o.Threshold == nil {
		return DefaultThreshold, nil
	}
	t := *o.Threshold
	if math.IsNaN(t) || t < 0 || t > 1 {
		return 0, fmt.Errorf("%w: threshold %v outside [0, 1]", api.ErrInvalidConfiguration, t)
	}
	return t, nil
}

// BinaryStatScores accumulates a binary confusion matrix from probability
// scores and 0/1 targets. Hard 0/1 predictions are valid scores.
type BinaryStatScores struct {
	threshold float64
	matrix    ConfusionMatrix
}

// NewBinaryStatScores creates an empty accumulator.
func NewBinaryStatScores(opts BinaryOptions) (*BinaryStatScores, error) {
	threshold, err := opts.threshold()
	if err != nil {
		return nil, err
	}
	return &BinaryStatScores{threshold: threshold}, nil
}

// Threshold returns the decision threshold in use.
func (s *BinaryStatScores) Threshold() float64 {
	return s.threshold
}

// Validate checks scores are probabilities and targets are 0 or 1.
func (s *BinaryStatScores) Validate(predictions []float64, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Probability(i, predictions[i]); err != nil {
			return err
		}
		if err := validate.BinaryLabel(i, targets[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update thresholds each score (inclusive) and counts it against its target.
func (s *BinaryStatScores) Update(predictions []float64, targets []int) error {
	if err := s.Validate(predictions, targets); err != nil {
		return err
	}
	for i, p := range predictions {
		s.matrix.record(p >= s.threshold, targets[i] == 1)
	}
	return nil
}

// Reset clears the counts.
func (s *BinaryStatScores) Reset() {
	s.matrix = ConfusionMatrix{}
}

// Matrix returns the current counts.
func (s *BinaryStatScores) Matrix() ConfusionMatrix {
	return s.matrix
}

func (s *BinaryStatScores) compute(score func(ConfusionMatrix) float64) (float64, bool) {
	if s.matrix.Total() == 0 {
		return 0, false
	}
	return score(s.matrix), true
}

// MulticlassOptions configures the multiclass metrics
type MulticlassOptions struct {
	// NumClasses is the number of classes, at least 2.
	NumClasses int
	// Average selects how per-class values are combined (default macro).
	Average api.Average
}

func (o MulticlassOptions) validate() error {
	if o.NumClasses < 2 {
		return fmt.Errorf("%w: num_classes must be at least 2, got %d", api.ErrInvalidConfiguration, o.NumClasses)
	}
	if !o.Average.Valid() {
		return fmt.Errorf("%w: unknown average %v", api.ErrInvalidConfiguration, o.Average)
	}
	return nil
}

// MulticlassStatScores keeps one-vs-rest counts per class together with the
// full target-by-prediction count matrix.
type MulticlassStatScores struct {
	numClasses int
	average    api.Average
	classes    []ConfusionMatrix
	counts     [][]int
	total      int
}

// NewMulticlassStatScores creates an empty accumulator.
func NewMulticlassStatScores(opts MulticlassOptions) (*MulticlassStatScores, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	s := &MulticlassStatScores{numClasses: opts.NumClasses, average: opts.Average}
	s.Reset()
	return s, nil
}

// NumClasses returns the configured number of classes.
func (s *MulticlassStatScores) NumClasses() int {
	return s.numClasses
}

// Validate checks that predicted and target class indices are in range.
func (s *MulticlassStatScores) Validate(predictions []int, targets []int) error {
	if err := validate.Batch(len(predictions), len(targets)); err != nil {
		return err
	}
	for i := range predictions {
		if err := validate.Label(i, predictions[i], s.numClasses); err != nil {
			return err
		}
		if err := validate.Label(i, targets[i], s.numClasses); err != nil {
			return err
		}
	}
	return nil
}

// Update counts class-index predictions against targets.
func (s *MulticlassStatScores) Update(predictions []int, targets []int) error {
	if err := s.Validate(predictions, targets); err != nil {
		return err
	}
	for i, p := range predictions {
		s.record(p, targets[i])
	}
	return nil
}

// ValidateScores checks score rows and targets.
func (s *MulticlassStatScores) ValidateScores(rows [][]float64, targets []int) error {
	if err := validate.Batch(len(rows), len(targets)); err != nil {
		return err
	}
	for i := range rows {
		if err := validate.Row(i, rows[i], s.numClasses); err != nil {
			return err
		}
		if err := validate.Label(i, targets[i], s.numClasses); err != nil {
			return err
		}
	}
	return nil
}

// UpdateScores takes one row of class scores per sample and predicts the
// argmax. On equal scores the lowest class index wins.
func (s *MulticlassStatScores) UpdateScores(rows [][]float64, targets []int) error {
	if err := s.ValidateScores(rows, targets); err != nil {
		return err
	}
	for i, row := range rows {
		s.record(argmax(row), targets[i])
	}
	return nil
}

func (s *MulticlassStatScores) record(predicted, target int) {
	for c := range s.classes {
		s.classes[c].record(c == predicted, c == target)
	}
	s.counts[target][predicted]++
	s.total++
}

// Reset clears all counts.
func (s *MulticlassStatScores) Reset() {
	s.classes = make([]ConfusionMatrix, s.numClasses)
	s.counts = make([][]int, s.numClasses)
	for i := range s.counts {
		s.counts[i] = make([]int, s.numClasses)
	}
	s.total = 0
}

// Total is the number of samples seen.
func (s *MulticlassStatScores) Total() int {
	return s.total
}

// Class returns the one-vs-rest counts of class c, or false when c is not
// in [0, NumClasses).
func (s *MulticlassStatScores) Class(c int) (ConfusionMatrix, bool) {
	if c < 0 || c >= s.numClasses {
		return ConfusionMatrix{}, false
	}
	return s.classes[c], true
}

func (s *MulticlassStatScores) perClass(score func(ConfusionMatrix) float64) ([]float64, bool) {
	if s.total == 0 {
		return nil, false
	}
	out := make([]float64, s.numClasses)
	for c, cm := range s.classes {
		out[c] = score(cm)
	}
	return out, true
}

// reduce combines per-class scores following the configured average.
// Macro skips classes that never occurred in either predictions or targets.
func (s *MulticlassStatScores) reduce(score func(ConfusionMatrix) float64) (float64, bool) {
	if s.total == 0 {
		return 0, false
	}
	switch s.average {
	case api.AverageMicro:
		var pooled ConfusionMatrix
		for _, cm := range s.classes {
			pooled = pooled.plus(cm)
		}
		return score(pooled), true
	case api.AverageWeighted:
		var num, den float64
		for _, cm := range s.classes {
			support := float64(cm.TruePositive + cm.FalseNegative)
			num += support * score(cm)
			den += support
		}
		if den == 0 {
			return 0, true
		}
		return num / den, true
	default:
		var sum float64
		n := 0
		for _, cm := range s.classes {
			if cm.TruePositive+cm.FalsePositive+cm.FalseNegative == 0 {
				continue
			}
			sum += score(cm)
			n++
		}
		if n == 0 {
			return 0, true
		}
		return sum / float64(n), true
	}
}

func argmax(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}
