package suite

import (
	"fmt"
	"log/slog"

	"github.com/datar-psa/gometrics/api"
)

// Result is the value of one metric at the time of Suite.Compute.
type Result struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	// Value is meaningful only when Defined is true.
	Value   float64 `json:"value" yaml:"value"`
	Defined bool    `json:"defined" yaml:"defined"`
}

type scalar interface {
	Compute() (float64, bool)
	Reset()
}

type entry struct {
	name, kind string
	metric     scalar
}

type member[P, T any] struct {
	name   string
	metric api.Metric[P, T]
}

type multiclassMember struct {
	name   string
	metric multiclassMetric
}

// Suite holds a set of metrics grouped by the batches they accept.
// Like the metrics it holds, a Suite is not safe for concurrent use.
type Suite struct {
	entries    []entry
	binary     []member[float64, int]
	multiclass []multiclassMember
	regression []member[float64, float64]
	text       []member[string, string]
	clustering []member[int, int]
	logger     *slog.Logger
}

func (s *Suite) register(mc MetricConfig, m scalar) {
	s.entries = append(s.entries, entry{name: mc.Name, kind: mc.Kind, metric: m})
}

// UpdateBinary feeds scores in [0, 1] and {0, 1} targets to the binary
// classification, AUROC and hinge metrics.
func (s *Suite) UpdateBinary(scores []float64, targets []int) error {
	return update(s.logger, "binary", s.binary, scores, targets)
}

// UpdateMulticlass feeds predicted class indices to the multiclass metrics.
func (s *Suite) UpdateMulticlass(predictions, targets []int) error {
	for _, m := range s.multiclass {
		if err := m.metric.Validate(predictions, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	for _, m := range s.multiclass {
		if err := m.metric.Update(predictions, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	s.logDebug("multiclass", len(s.multiclass), len(predictions))
	return nil
}

// UpdateMulticlassScores feeds per-class score rows to the multiclass metrics;
// each row is reduced to its argmax.
func (s *Suite) UpdateMulticlassScores(rows [][]float64, targets []int) error {
	for _, m := range s.multiclass {
		if err := m.metric.ValidateScores(rows, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	for _, m := range s.multiclass {
		if err := m.metric.UpdateScores(rows, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	s.logDebug("multiclass", len(s.multiclass), len(rows))
	return nil
}

// UpdateRegression feeds continuous predictions to the regression metrics.
func (s *Suite) UpdateRegression(predictions, targets []float64) error {
	return update(s.logger, "regression", s.regression, predictions, targets)
}

// UpdateText feeds candidate and reference strings to the text metrics.
func (s *Suite) UpdateText(candidates, references []string) error {
	return update(s.logger, "text", s.text, candidates, references)
}

// UpdateClustering feeds cluster assignments to the clustering metrics.
func (s *Suite) UpdateClustering(predictions, targets []int) error {
	return update(s.logger, "clustering", s.clustering, predictions, targets)
}

// update validates the batch against every member before updating any of
// them, so a rejected batch leaves the whole family unchanged.
func update[P, T any](logger *slog.Logger, family string, members []member[P, T], predictions []P, targets []T) error {
	for _, m := range members {
		if err := m.metric.Validate(predictions, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	for _, m := range members {
		if err := m.metric.Update(predictions, targets); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	logger.Debug("suite update", "family", family, "metrics", len(members), "batch", len(predictions))
	return nil
}

func (s *Suite) logDebug(family string, metrics, batch int) {
	s.logger.Debug("suite update", "family", family, "metrics", metrics, "batch", batch)
}

// Compute returns one result per metric in configuration order.
func (s *Suite) Compute() []Result {
	results := make([]Result, len(s.entries))
	for i, e := range s.entries {
		v, ok := e.metric.Compute()
		results[i] = Result{Name: e.name, Kind: e.kind, Value: v, Defined: ok}
	}
	return results
}

// Reset resets every metric of the suite.
func (s *Suite) Reset() {
	for _, e := range s.entries {
		e.metric.Reset()
	}
}

// Names returns the metric names in configuration order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}
