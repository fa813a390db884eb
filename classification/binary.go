package classification

import "github.com/datar-psa/gometrics/api"

// BinaryAccuracy is (TP+TN) / total over thresholded scores.
type BinaryAccuracy struct{ BinaryStatScores }

// NewBinaryAccuracy creates a binary accuracy metric.
func NewBinaryAccuracy(opts BinaryOptions) (*BinaryAccuracy, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryAccuracy{*s}, nil
}

func (m *BinaryAccuracy) Compute() (float64, bool) {
	return m.compute(ConfusionMatrix.Accuracy)
}

// BinaryPrecision is TP / (TP+FP); 0 when nothing was predicted positive.
type BinaryPrecision struct{ BinaryStatScores }

// NewBinaryPrecision creates a binary precision metric.
func NewBinaryPrecision(opts BinaryOptions) (*BinaryPrecision, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryPrecision{*s}, nil
}

func (m *BinaryPrecision) Compute() (float64, bool) {
	return m.compute(ConfusionMatrix.Precision)
}

// BinaryRecall is TP / (TP+FN); 0 when no positive target was seen.
type BinaryRecall struct{ BinaryStatScores }

// NewBinaryRecall creates a binary recall metric.
func NewBinaryRecall(opts BinaryOptions) (*BinaryRecall, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryRecall{*s}, nil
}

func (m *BinaryRecall) Compute() (float64, bool) {
	return m.compute(ConfusionMatrix.Recall)
}

// BinaryF1Score is the harmonic mean of precision and recall.
type BinaryF1Score struct{ BinaryStatScores }

// NewBinaryF1Score creates a binary F1 metric.
func NewBinaryF1Score(opts BinaryOptions) (*BinaryF1Score, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryF1Score{*s}, nil
}

func (m *BinaryF1Score) Compute() (float64, bool) {
	return m.compute(ConfusionMatrix.F1)
}

// BinaryJaccardIndex is TP / (TP+FP+FN), the intersection over union of the
// predicted and actual positive sets. It is 0 when both sets are empty.
type BinaryJaccardIndex struct{ BinaryStatScores }

// NewBinaryJaccardIndex creates a binary Jaccard metric.
func NewBinaryJaccardIndex(opts BinaryOptions) (*BinaryJaccardIndex, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryJaccardIndex{*s}, nil
}

func (m *BinaryJaccardIndex) Compute() (float64, bool) {
	return m.compute(ConfusionMatrix.Jaccard)
}

// BinaryConfusionMatrix exposes the raw counts instead of a scalar.
type BinaryConfusionMatrix struct{ BinaryStatScores }

// NewBinaryConfusionMatrix creates a binary confusion matrix.
func NewBinaryConfusionMatrix(opts BinaryOptions) (*BinaryConfusionMatrix, error) {
	s, err := NewBinaryStatScores(opts)
	if err != nil {
		return nil, err
	}
	return &BinaryConfusionMatrix{*s}, nil
}

// Compute returns the counts, or false before any sample was seen.
func (m *BinaryConfusionMatrix) Compute() (ConfusionMatrix, bool) {
	if m.matrix.Total() == 0 {
		return ConfusionMatrix{}, false
	}
	return m.matrix, true
}

var (
	_ api.Metric[float64, int] = (*BinaryAccuracy)(nil)
	_ api.Metric[float64, int] = (*BinaryPrecision)(nil)
	_ api.Metric[float64, int] = (*BinaryRecall)(nil)
	_ api.Metric[float64, int] = (*BinaryF1Score)(nil)
	_ api.Metric[float64, int] = (*BinaryJaccardIndex)(nil)
)
