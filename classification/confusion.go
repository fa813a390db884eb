package classification

// ConfusionMatrix holds the four decision counts of one binary problem.
// For multiclass metrics there is one ConfusionMatrix per class (one-vs-rest).
type ConfusionMatrix struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
}

// Total is the number of samples counted.
func (c ConfusionMatrix) Total() int {
	return c.TruePositive + c.FalsePositive + c.TrueNegative + c.FalseNegative
}

// Accuracy is (TP+TN) / total.
func (c ConfusionMatrix) Accuracy() float64 {
	return ratio(c.TruePositive+c.TrueNegative, c.Total())
}

// Precision is TP / (TP+FP).
func (c ConfusionMatrix) Precision() float64 {
	return ratio(c.TruePositive, c.TruePositive+c.FalsePositive)
}

// Recall is TP / (TP+FN).
func (c ConfusionMatrix) Recall() float64 {
	return ratio(c.TruePositive, c.TruePositive+c.FalseNegative)
}

// Specificity is TN / (TN+FP).
func (c ConfusionMatrix) Specificity() float64 {
	return ratio(c.TrueNegative, c.TrueNegative+c.FalsePositive)
}

// F1 is the harmonic mean of precision and recall, 2TP / (2TP+FP+FN).
func (c ConfusionMatrix) F1() float64 {
	return ratio(2*c.TruePositive, 2*c.TruePositive+c.FalsePositive+c.FalseNegative)
}

// Jaccard is TP / (TP+FP+FN).
func (c ConfusionMatrix) Jaccard() float64 {
	return ratio(c.TruePositive, c.TruePositive+c.FalsePositive+c.FalseNegative)
}

func (c *ConfusionMatrix) record(predicted, actual bool) {
	switch {
	case predicted && actual:
		c.TruePositive++
	case predicted:
		c.FalsePositive++
	case actual:
		c.FalseNegative++
	default:
		c.TrueNegative++
	}
}

func (c ConfusionMatrix) plus(o ConfusionMatrix) ConfusionMatrix {
	return ConfusionMatrix{
		TruePositive:  c.TruePositive + o.TruePositive,
		FalsePositive: c.FalsePositive + o.FalsePositive,
		TrueNegative:  c.TrueNegative + o.TrueNegative,
		FalseNegative: c.FalseNegative + o.FalseNegative,
	}
}

// ratio resolves 0/0 to 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
