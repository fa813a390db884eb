package api

import (
	"fmt"
	"strings"
)

// Reduction collapses per-pair values into one scalar.
type Reduction int

const (
	// ReductionMean averages over all observed values. It is the default.
	ReductionMean Reduction = iota
	// ReductionSum adds all observed values.
	ReductionSum
	// ReductionMin keeps the smallest observed value.
	ReductionMin
	// ReductionMax keeps the largest observed value.
	ReductionMax
)

func (r Reduction) String() string {
	switch r {
	case ReductionMean:
		return "mean"
	case ReductionSum:
		return "sum"
	case ReductionMin:
		return "min"
	case ReductionMax:
		return "max"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// Valid reports whether r is one of the declared reductions.
func (r Reduction) Valid() bool {
	return r >= ReductionMean && r <= ReductionMax
}

// ParseReduction converts a configuration value to a Reduction.
// The empty string selects the default.
func ParseReduction(s string) (Reduction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mean":
		return ReductionMean, nil
	case "sum":
		return ReductionSum, nil
	case "min":
		return ReductionMin, nil
	case "max":
		return ReductionMax, nil
	default:
		return ReductionMean, fmt.Errorf("%w: unknown reduction %q", ErrInvalidConfiguration, s)
	}
}

// Average selects how per-class values of a multiclass metric are combined.
type Average int

const (
	// AverageMacro is the unweighted mean over classes. It is the default.
	AverageMacro Average = iota
	// AverageMicro pools the counts of all classes before dividing.
	AverageMicro
	// AverageWeighted weights each class by its support (TP+FN).
	AverageWeighted
	// AverageNone keeps per-class values; see ComputePerClass on the
	// multiclass metrics. Compute reports the unweighted mean.
	AverageNone
)

func (a Average) String() string {
	switch a {
	case AverageMacro:
		return "macro"
	case AverageMicro:
		return "micro"
	case AverageWeighted:
		return "weighted"
	case AverageNone:
		return "none"
	default:
		return fmt.Sprintf("Average(%d)", int(a))
	}
}

// Valid reports whether a is one of the declared averages.
func (a Average) Valid() bool {
	return a >= AverageMacro && a <= AverageNone
}

// ParseAverage converts a configuration value to an Average.
// The empty string selects the default.
func ParseAverage(s string) (Average, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "macro":
		return AverageMacro, nil
	case "micro":
		return AverageMicro, nil
	case "weighted":
		return AverageWeighted, nil
	case "none":
		return AverageNone, nil
	default:
		return AverageMacro, fmt.Errorf("%w: unknown average %q", ErrInvalidConfiguration, s)
	}
}
