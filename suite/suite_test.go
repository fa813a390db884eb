package suite

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
	"github.com/datar-psa/gometrics/classification"
)

func loadTestSuite(t *testing.T, opts ...Option) *Suite {
	t.Helper()
	cfg, err := LoadFile("testdata/suite.yaml")
	require.NoError(t, err)
	s, err := Build(cfg, opts...)
	require.NoError(t, err)
	return s
}

func results(s *Suite) map[string]Result {
	out := map[string]Result{}
	for _, r := range s.Compute() {
		out[r.Name] = r
	}
	return out
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("testdata/suite.yaml")
	require.NoError(t, err)
	require.Len(t, cfg.Metrics, 9)
	assert.Equal(t, MetricConfig{Name: "f1", Kind: KindMulticlassF1, NumClasses: 3, Average: "macro"}, cfg.Metrics[3])
	assert.Equal(t, "exponential", cfg.Metrics[5].Smoothing)

	_, err = LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestSuiteComputeOrderAndUndefined(t *testing.T) {
	s := loadTestSuite(t)
	assert.Equal(t, []string{"auc", "acc", "hinge", "f1", "mse", "bleu", "rouge1", "edits", "mi"}, s.Names())

	for _, r := range s.Compute() {
		assert.False(t, r.Defined, r.Name)
	}
}

func TestSuiteUpdates(t *testing.T) {
	s := loadTestSuite(t)

	require.NoError(t, s.UpdateBinary(
		[]float64{0.11, 0.22, 0.84, 0.73, 0.33, 0.92},
		[]int{0, 1, 0, 1, 0, 1},
	))
	require.NoError(t, s.UpdateMulticlass([]int{0, 2, 1, 2}, []int{0, 1, 1, 2}))
	require.NoError(t, s.UpdateRegression([]float64{3.0, 5.0, 2.5, 7.0}, []float64{2.5, 5.0, 4.0, 8.0}))
	require.NoError(t, s.UpdateText([]string{"rain", "the cat is on the mat"}, []string{"shine", "the cat is on the mat"}))
	require.NoError(t, s.UpdateClustering([]int{1, 1, 0, 0}, []int{0, 0, 1, 1}))

	got := results(s)
	for name, r := range got {
		assert.True(t, r.Defined, name)
	}
	assert.InDelta(t, 2.0/3.0, got["auc"].Value, 1e-12)
	assert.InDelta(t, 2.0/3.0, got["acc"].Value, 1e-12)
	assert.InDelta(t, 5.41/6, got["hinge"].Value, 1e-12)
	assert.InDelta(t, 0.875, got["mse"].Value, 1e-12)
	assert.InDelta(t, 3, got["edits"].Value, 1e-12)
	assert.InDelta(t, 0.5, got["rouge1"].Value, 1e-12)
	assert.Greater(t, got["bleu"].Value, 0.0)
	assert.Equal(t, KindMutualInfo, got["mi"].Kind)

	f1, err := classification.NewMulticlassF1Score(classification.MulticlassOptions{NumClasses: 3})
	require.NoError(t, err)
	require.NoError(t, f1.Update([]int{0, 2, 1, 2}, []int{0, 1, 1, 2}))
	want, _ := f1.Compute()
	assert.InDelta(t, want, got["f1"].Value, 1e-12)

	s.Reset()
	for _, r := range s.Compute() {
		assert.False(t, r.Defined, r.Name)
	}
}

func TestSuiteMulticlassScores(t *testing.T) {
	s := loadTestSuite(t)
	require.NoError(t, s.UpdateMulticlassScores(
		[][]float64{{0.8, 0.1, 0.1}, {0.1, 0.2, 0.7}},
		[]int{0, 2},
	))
	got := results(s)
	assert.True(t, got["f1"].Defined)
	assert.InDelta(t, 1, got["f1"].Value, 1e-12)

	err := s.UpdateMulticlassScores([][]float64{{0.5, 0.5}}, []int{0})
	assert.ErrorIs(t, err, api.ErrInvalidValue)
}

func TestSuiteRejectedBatchLeavesFamilyUnchanged(t *testing.T) {
	s := loadTestSuite(t)

	// auc accepts any finite score; acc rejects scores outside [0, 1].
	err := s.UpdateBinary([]float64{0.2, 1.5}, []int{0, 1})
	require.ErrorIs(t, err, api.ErrInvalidValue)
	assert.Contains(t, err.Error(), "acc")

	err = s.UpdateBinary([]float64{0.2, 0.7}, []int{0, 2})
	require.ErrorIs(t, err, api.ErrInvalidLabel)

	err = s.UpdateText([]string{"a"}, []string{"a", "b"})
	require.ErrorIs(t, err, api.ErrLengthMismatch)

	for _, r := range s.Compute() {
		assert.False(t, r.Defined, r.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty document", yaml: ""},
		{name: "no metrics", yaml: "metrics: []"},
		{name: "unknown field", yaml: "metrics:\n  - name: a\n    kind: mse\n    colour: red\n"},
		{name: "missing name", yaml: "metrics:\n  - kind: mse\n"},
		{name: "duplicate name", yaml: "metrics:\n  - name: a\n    kind: mse\n  - name: a\n    kind: mae\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, api.ErrInvalidConfiguration)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tooHigh := 1.5
	tests := []struct {
		name   string
		metric MetricConfig
	}{
		{name: "unknown kind", metric: MetricConfig{Name: "x", Kind: "perplexity"}},
		{name: "threshold out of range", metric: MetricConfig{Name: "x", Kind: KindBinaryAccuracy, Threshold: &tooHigh}},
		{name: "negative bin count", metric: MetricConfig{Name: "x", Kind: KindAUROC, BinCount: -1}},
		{name: "too few classes", metric: MetricConfig{Name: "x", Kind: KindMulticlassAccuracy, NumClasses: 1}},
		{name: "unknown average", metric: MetricConfig{Name: "x", Kind: KindMulticlassAccuracy, NumClasses: 3, Average: "harmonic"}},
		{name: "unknown normalization", metric: MetricConfig{Name: "x", Kind: KindNRMSE, Normalization: "median"}},
		{name: "unknown smoothing", metric: MetricConfig{Name: "x", Kind: KindBleu, Smoothing: "laplace"}},
		{name: "unknown overlap", metric: MetricConfig{Name: "x", Kind: KindRouge, Overlap: "skipgram"}},
		{name: "unknown reduction", metric: MetricConfig{Name: "x", Kind: KindEditDistance, Reduction: "median"}},
		{name: "unknown level", metric: MetricConfig{Name: "x", Kind: KindEditDistance, Level: "sentence"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(&Config{Metrics: []MetricConfig{tt.metric}})
			assert.ErrorIs(t, err, api.ErrInvalidConfiguration)
		})
	}

	_, err := Build(nil)
	assert.ErrorIs(t, err, api.ErrInvalidConfiguration)
}

func TestBinnedAUROCRange(t *testing.T) {
	lo, hi := -1.0, 1.0
	s, err := Build(&Config{Metrics: []MetricConfig{
		{Name: "auc", Kind: KindAUROC, BinCount: 10, Min: &lo, Max: &hi},
	}})
	require.NoError(t, err)
	require.NoError(t, s.UpdateBinary([]float64{-0.9, 0.9}, []int{0, 1}))
	got := results(s)["auc"]
	assert.True(t, got.Defined)
	assert.Equal(t, 1.0, got.Value)
}

func TestZeroThresholdFromYAML(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
metrics:
  - name: acc
    kind: binary_accuracy
    threshold: 0
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Metrics[0].Threshold)

	s, err := Build(cfg)
	require.NoError(t, err)
	require.NoError(t, s.UpdateBinary([]float64{0.1, 0}, []int{1, 1}))
	got := results(s)["acc"]
	assert.True(t, got.Defined)
	assert.Equal(t, 1.0, got.Value)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := loadTestSuite(t, WithLogger(logger))
	require.NoError(t, s.UpdateRegression([]float64{1}, []float64{1}))

	assert.Contains(t, buf.String(), "suite built")
	assert.Contains(t, buf.String(), "family=regression")
}
