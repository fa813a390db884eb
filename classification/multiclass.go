package classification

import "github.com/datar-psa/gometrics/api"

// MulticlassAccuracy averages per-class recall. With micro averaging it is
// the fraction of correctly classified samples.
type MulticlassAccuracy struct{ MulticlassStatScores }

// NewMulticlassAccuracy creates a multiclass accuracy metric.
func NewMulticlassAccuracy(opts MulticlassOptions) (*MulticlassAccuracy, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassAccuracy{*s}, nil
}

func (m *MulticlassAccuracy) Compute() (float64, bool) {
	return m.reduce(ConfusionMatrix.Recall)
}

// ComputePerClass returns the accuracy of each class.
func (m *MulticlassAccuracy) ComputePerClass() ([]float64, bool) {
	return m.perClass(ConfusionMatrix.Recall)
}

// MulticlassPrecision averages per-class precision.
type MulticlassPrecision struct{ MulticlassStatScores }

// NewMulticlassPrecision creates a multiclass precision metric.
func NewMulticlassPrecision(opts MulticlassOptions) (*MulticlassPrecision, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassPrecision{*s}, nil
}

func (m *MulticlassPrecision) Compute() (float64, bool) {
	return m.reduce(ConfusionMatrix.Precision)
}

// ComputePerClass returns the precision of each class.
func (m *MulticlassPrecision) ComputePerClass() ([]float64, bool) {
	return m.perClass(ConfusionMatrix.Precision)
}

// MulticlassRecall averages per-class recall.
type MulticlassRecall struct{ MulticlassStatScores }

// NewMulticlassRecall creates a multiclass recall metric.
func NewMulticlassRecall(opts MulticlassOptions) (*MulticlassRecall, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassRecall{*s}, nil
}

func (m *MulticlassRecall) Compute() (float64, bool) {
	return m.reduce(ConfusionMatrix.Recall)
}

// ComputePerClass returns the recall of each class.
func (m *MulticlassRecall) ComputePerClass() ([]float64, bool) {
	return m.perClass(ConfusionMatrix.Recall)
}

// MulticlassF1Score averages per-class F1.
type MulticlassF1Score struct{ MulticlassStatScores }

// NewMulticlassF1Score creates a multiclass F1 metric.
func NewMulticlassF1Score(opts MulticlassOptions) (*MulticlassF1Score, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassF1Score{*s}, nil
}

func (m *MulticlassF1Score) Compute() (float64, bool) {
	return m.reduce(ConfusionMatrix.F1)
}

// ComputePerClass returns the F1 of each class.
func (m *MulticlassF1Score) ComputePerClass() ([]float64, bool) {
	return m.perClass(ConfusionMatrix.F1)
}

// MulticlassJaccardIndex averages per-class intersection over union.
type MulticlassJaccardIndex struct{ MulticlassStatScores }

// NewMulticlassJaccardIndex creates a multiclass Jaccard metric.
func NewMulticlassJaccardIndex(opts MulticlassOptions) (*MulticlassJaccardIndex, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassJaccardIndex{*s}, nil
}

func (m *MulticlassJaccardIndex) Compute() (float64, bool) {
	return m.reduce(ConfusionMatrix.Jaccard)
}

// ComputePerClass returns the Jaccard index of each class.
func (m *MulticlassJaccardIndex) ComputePerClass() ([]float64, bool) {
	return m.perClass(ConfusionMatrix.Jaccard)
}

// MulticlassConfusionMatrix exposes the target-by-prediction counts.
type MulticlassConfusionMatrix struct{ MulticlassStatScores }

// NewMulticlassConfusionMatrix creates a multiclass confusion matrix.
// The Average option is ignored.
func NewMulticlassConfusionMatrix(opts MulticlassOptions) (*MulticlassConfusionMatrix, error) {
	s, err := NewMulticlassStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &MulticlassConfusionMatrix{*s}, nil
}

// Compute returns a copy of the counts; row i holds the samples whose target
// is class i, column j those predicted as class j.
func (m *MulticlassConfusionMatrix) Compute() ([][]int, bool) {
	if m.total == 0 {
		return nil, false
	}
	out := make([][]int, len(m.counts))
	for i, row := range m.counts {
		out[i] = append([]int(nil), row...)
	}
	return out, true
}

var (
	_ api.Metric[int, int] = (*MulticlassAccuracy)(nil)
	_ api.Metric[int, int] = (*MulticlassPrecision)(nil)
	_ api.Metric[int, int] = (*MulticlassRecall)(nil)
	_ api.Metric[int, int] = (*MulticlassF1Score)(nil)
	_ api.Metric[int, int] = (*MulticlassJaccardIndex)(nil)
)
