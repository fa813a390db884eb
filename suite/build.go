package suite

import (
	"fmt"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/classification"
	"github.com/datar-psa/gometrics/clustering"
	"github.com/datar-psa/gometrics/internal/validate"
	"github.com/datar-psa/gometrics/regression"
	"github.com/datar-psa/gometrics/text"
)

// Metric kinds accepted in MetricConfig.Kind.
const (
	KindBinaryAccuracy      = "binary_accuracy"
	KindBinaryPrecision     = "binary_precision"
	KindBinaryRecall        = "binary_recall"
	KindBinaryF1            = "binary_f1"
	KindBinaryJaccard       = "binary_jaccard"
	KindAUROC               = "auroc"
	KindHinge               = "hinge"
	KindMulticlassAccuracy  = "multiclass_accuracy"
	KindMulticlassPrecision = "multiclass_precision"
	KindMulticlassRecall    = "multiclass_recall"
	KindMulticlassF1        = "multiclass_f1"
	KindMulticlassJaccard   = "multiclass_jaccard"
	KindMSE                 = "mse"
	KindMAE                 = "mae"
	KindMAPE                = "mape"
	KindR2                  = "r2"
	KindNRMSE               = "nrmse"
	KindBleu                = "bleu"
	KindRouge               = "rouge"
	KindEditDistance        = "edit_distance"
	KindExactMatch          = "exact_match"
	KindMutualInfo          = "mutual_info"
)

// multiclassMetric accepts predicted labels or per-class score rows.
type multiclassMetric interface {
	api.Metric[int, int]
	ValidateScores(rows [][]float64, targets []int) error
	UpdateScores(rows [][]float64, targets []int) error
}

// Build constructs every metric of cfg.
func Build(cfg *Config, opts ...Option) (*Suite, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil suite configuration", api.ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	s := &Suite{logger: c.logger}
	for _, mc := range cfg.Metrics {
		if err := s.add(mc); err != nil {
			return nil, fmt.Errorf("metric %q: %w", mc.Name, err)
		}
	}
	s.logger.Debug("suite built",
		"metrics", len(s.entries),
		"binary", len(s.binary),
		"multiclass", len(s.multiclass),
		"regression", len(s.regression),
		"text", len(s.text),
		"clustering", len(s.clustering))
	return s, nil
}

func (s *Suite) add(mc MetricConfig) error {
	switch mc.Kind {
	case KindBinaryAccuracy, KindBinaryPrecision, KindBinaryRecall, KindBinaryF1, KindBinaryJaccard, KindAUROC, KindHinge:
		m, err := newBinary(mc)
		if err != nil {
			return err
		}
		s.binary = append(s.binary, member[float64, int]{name: mc.Name, metric: m})
		s.register(mc, m)
	case KindMulticlassAccuracy, KindMulticlassPrecision, KindMulticlassRecall, KindMulticlassF1, KindMulticlassJaccard:
		m, err := newMulticlass(mc)
		if err != nil {
			return err
		}
		s.multiclass = append(s.multiclass, multiclassMember{name: mc.Name, metric: m})
		s.register(mc, m)
	case KindMSE, KindMAE, KindMAPE, KindR2, KindNRMSE:
		m, err := newRegression(mc)
		if err != nil {
			return err
		}
		s.regression = append(s.regression, member[float64, float64]{name: mc.Name, metric: m})
		s.register(mc, m)
	case KindBleu, KindRouge, KindEditDistance, KindExactMatch:
		m, err := newText(mc)
		if err != nil {
			return err
		}
		s.text = append(s.text, member[string, string]{name: mc.Name, metric: m})
		s.register(mc, m)
	case KindMutualInfo:
		m := clustering.NewMutualInfoScore()
		s.clustering = append(s.clustering, member[int, int]{name: mc.Name, metric: m})
		s.register(mc, m)
	default:
		return fmt.Errorf("%w: unknown kind %q", api.ErrInvalidConfiguration, mc.Kind)
	}
	return nil
}

func newBinary(mc MetricConfig) (api.Metric[float64, int], error) {
	opts := classification.BinaryOptions{Threshold: mc.Threshold}
	switch mc.Kind {
	case KindBinaryAccuracy:
		return classification.NewBinaryAccuracy(opts)
	case KindBinaryPrecision:
		return classification.NewBinaryPrecision(opts)
	case KindBinaryRecall:
		return classification.NewBinaryRecall(opts)
	case KindBinaryF1:
		return classification.NewBinaryF1Score(opts)
	case KindBinaryJaccard:
		return classification.NewBinaryJaccardIndex(opts)
	case KindAUROC:
		aopts := classification.AUROCOptions{BinCount: mc.BinCount}
		if mc.Min != nil {
			aopts.Min = *mc.Min
		}
		if mc.Max != nil {
			aopts.Max = *mc.Max
		}
		return classification.NewAUROC(aopts)
	default:
		return zeroOneHinge{classification.NewBinaryHingeLoss(classification.HingeOptions{Squared: mc.Squared})}, nil
	}
}

func newMulticlass(mc MetricConfig) (multiclassMetric, error) {
	average, err := api.ParseAverage(mc.Average)
	if err != nil {
		return nil, err
	}
	opts := classification.MulticlassOptions{NumClasses: mc.NumClasses, Average: average}
	switch mc.Kind {
	case KindMulticlassAccuracy:
		return classification.NewMulticlassAccuracy(opts)
	case KindMulticlassPrecision:
		return classification.NewMulticlassPrecision(opts)
	case KindMulticlassRecall:
		return classification.NewMulticlassRecall(opts)
	case KindMulticlassF1:
		return classification.NewMulticlassF1Score(opts)
	default:
		return classification.NewMulticlassJaccardIndex(opts)
	}
}

func newRegression(mc MetricConfig) (api.Metric[float64, float64], error) {
	switch mc.Kind {
	case KindMSE:
		return regression.NewMeanSquaredError(), nil
	case KindMAE:
		return regression.NewMeanAbsoluteError(), nil
	case KindMAPE:
		return regression.NewMeanAbsolutePercentageError(), nil
	case KindR2:
		return regression.NewR2Score(), nil
	default:
		n, err := regression.ParseNormalization(mc.Normalization)
		if err != nil {
			return nil, err
		}
		return regression.NewNormalizedRootMeanSquaredError(n)
	}
}

func newText(mc MetricConfig) (api.Metric[string, string], error) {
	switch mc.Kind {
	case KindBleu:
		smoothing, err := text.ParseSmoothing(mc.Smoothing)
		if err != nil {
			return nil, err
		}
		return text.NewBleu(text.BleuOptions{MaxN: mc.MaxN, Smoothing: smoothing, Epsilon: mc.Epsilon})
	case KindRouge:
		overlap, err := text.ParseOverlap(mc.Overlap)
		if err != nil {
			return nil, err
		}
		return text.NewRouge(text.RougeOptions{Overlap: overlap, N: mc.N})
	case KindEditDistance:
		reduction, err := api.ParseReduction(mc.Reduction)
		if err != nil {
			return nil, err
		}
		level, err := text.ParseLevel(mc.Level)
		if err != nil {
			return nil, err
		}
		return text.NewEditDistance(text.EditDistanceOptions{Reduction: reduction, Level: level})
	default:
		return text.NewExactMatch(text.ExactMatchOptions{
			CaseInsensitive: mc.CaseInsensitive,
			TrimWhitespace:  mc.TrimWhitespace,
		}), nil
	}
}

// zeroOneHinge feeds {0, 1} targets to a hinge loss that expects {-1, +1}.
type zeroOneHinge struct {
	*classification.BinaryHingeLoss
}

func (h zeroOneHinge) Validate(predictions []float64, targets []int) error {
	signed, err := toSigned(targets)
	if err != nil {
		return err
	}
	return h.BinaryHingeLoss.Validate(predictions, signed)
}

func (h zeroOneHinge) Update(predictions []float64, targets []int) error {
	signed, err := toSigned(targets)
	if err != nil {
		return err
	}
	return h.BinaryHingeLoss.Update(predictions, signed)
}

func toSigned(targets []int) ([]int, error) {
	out := make([]int, len(targets))
	for i, t := range targets {
		if err := validate.BinaryLabel(i, t); err != nil {
			return nil, err
		}
		out[i] = 2*t - 1
	}
	return out, nil
}
