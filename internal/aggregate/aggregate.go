// Package aggregate implements the running reduction used by per-pair metrics.
package aggregate

import "github.com/datar-psa/gometrics/api"

// Aggregator keeps the running statistics needed by every api.Reduction.
// The zero value uses api.ReductionMean.
type Aggregator struct {
	reduction api.Reduction
	total     int
	sum       float64
	min       float64
	max       float64
}

// New returns an empty aggregator for the given reduction.
func New(reduction api.Reduction) Aggregator {
	return Aggregator{reduction: reduction}
}

// Add records one value.
func (a *Aggregator) Add(v float64) {
	if a.total == 0 {
		a.min, a.max = v, v
	} else {
		a.min = min(a.min, v)
		a.max = max(a.max, v)
	}
	a.total++
	a.sum += v
}

// Total is the number of recorded values.
func (a *Aggregator) Total() int {
	return a.total
}

// Sum is the running sum of recorded values.
func (a *Aggregator) Sum() float64 {
	return a.sum
}

// Compute reduces the recorded values. It returns false when nothing was recorded.
func (a *Aggregator) Compute() (float64, bool) {
	if a.total == 0 {
		return 0, false
	}
	switch a.reduction {
	case api.ReductionSum:
		return a.sum, true
	case api.ReductionMin:
		return a.min, true
	case api.ReductionMax:
		return a.max, true
	default:
		return a.sum / float64(a.total), true
	}
}

// Reset clears the recorded values and keeps the reduction.
func (a *Aggregator) Reset() {
	*a = Aggregator{reduction: a.reduction}
}
