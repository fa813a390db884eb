package gometrics

import (
	"github.com/datar-psa/gometrics/api"
)

type Metric[P, T any] = api.Metric[P, T]
type Reduction = api.Reduction
type Average = api.Average
type Embedder = api.Embedder
type ScoreSource = api.ScoreSource
type ModerationProvider = api.ModerationProvider
type ModerationCategory = api.ModerationCategory
type ModerationResult = api.ModerationResult

var ModerationCategories = api.ModerationCategories

const (
	ReductionMean = api.ReductionMean
	ReductionSum  = api.ReductionSum
	ReductionMin  = api.ReductionMin
	ReductionMax  = api.ReductionMax

	AverageMacro    = api.AverageMacro
	AverageMicro    = api.AverageMicro
	AverageWeighted = api.AverageWeighted
	AverageNone     = api.AverageNone
)
