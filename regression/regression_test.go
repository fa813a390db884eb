package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
)

func mustNRMSE(t *testing.T, n Normalization) api.Metric[float64, float64] {
	t.Helper()
	m, err := NewNormalizedRootMeanSquaredError(n)
	require.NoError(t, err)
	return m
}

func TestRegressionMetrics(t *testing.T) {
	tests := []struct {
		name        string
		metric      api.Metric[float64, float64]
		predictions []float64
		targets     []float64
		want        float64
	}{
		{
			name:        "mse",
			metric:      NewMeanSquaredError(),
			predictions: []float64{3.0, 5.0, 2.5, 7.0},
			targets:     []float64{2.5, 5.0, 4.0, 8.0},
			want:        0.875,
		},
		{
			name:        "mae",
			metric:      NewMeanAbsoluteError(),
			predictions: []float64{2.5, 0.0, 2.0, 8.0},
			targets:     []float64{3.0, -0.5, 2.0, 7.0},
			want:        0.5,
		},
		{
			name:        "mape",
			metric:      NewMeanAbsolutePercentageError(),
			predictions: []float64{0.9, 15.0, 1200000.0},
			targets:     []float64{1.0, 10.0, 1000000.0},
			want:        0.26666666666666666,
		},
		{
			name:        "mape skips zero targets",
			metric:      NewMeanAbsolutePercentageError(),
			predictions: []float64{3, 1.5},
			targets:     []float64{0, 1},
			want:        0.5,
		},
		{
			name:        "r2",
			metric:      NewR2Score(),
			predictions: []float64{2.5, 0.0, 2.0, 8.0},
			targets:     []float64{3.0, -0.5, 2.0, 7.0},
			want:        0.9486081370449679,
		},
		{
			name:        "nrmse mean",
			metric:      mustNRMSE(t, NormalizationMean),
			predictions: []float64{3.0, 5.0, 2.5, 7.0},
			targets:     []float64{2.5, 5.0, 4.0, 8.0},
			want:        0.19187986598840726,
		},
		{
			name:        "nrmse range",
			metric:      mustNRMSE(t, NormalizationRange),
			predictions: []float64{3.0, 5.0, 2.5, 7.0},
			targets:     []float64{2.5, 5.0, 4.0, 8.0},
			want:        0.17007533576245187,
		},
		{
			name:        "nrmse std",
			metric:      mustNRMSE(t, NormalizationStd),
			predictions: []float64{3.0, 5.0, 2.5, 7.0},
			targets:     []float64{2.5, 5.0, 4.0, 8.0},
			want:        math.Sqrt(0.875) / math.Sqrt(16.1875/4),
		},
		{
			name:        "nrmse l2",
			metric:      mustNRMSE(t, NormalizationL2),
			predictions: []float64{3.0, 5.0, 2.5, 7.0},
			targets:     []float64{2.5, 5.0, 4.0, 8.0},
			want:        math.Sqrt(0.875) / math.Sqrt(111.25),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.metric.Update(tt.predictions, tt.targets))
			got, ok := tt.metric.Compute()
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-12)

			again, _ := tt.metric.Compute()
			assert.Equal(t, got, again)

			tt.metric.Reset()
			_, ok = tt.metric.Compute()
			assert.False(t, ok)
		})
	}
}

func TestRegressionBatchesMatchSingleUpdate(t *testing.T) {
	predictions := []float64{3.0, 5.0, 2.5, 7.0, -1, 0.25}
	targets := []float64{2.5, 5.0, 4.0, 8.0, -2, 1}

	newMetrics := func() []api.Metric[float64, float64] {
		return []api.Metric[float64, float64]{
			NewMeanSquaredError(),
			NewMeanAbsoluteError(),
			NewMeanAbsolutePercentageError(),
			NewR2Score(),
			mustNRMSE(t, NormalizationStd),
		}
	}
	whole, split := newMetrics(), newMetrics()
	for i := range whole {
		require.NoError(t, whole[i].Update(predictions, targets))
		require.NoError(t, split[i].Update(predictions[:2], targets[:2]))
		require.NoError(t, split[i].Update(predictions[2:], targets[2:]))

		want, ok := whole[i].Compute()
		require.True(t, ok)
		got, ok := split[i].Compute()
		require.True(t, ok)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestRegressionUndefined(t *testing.T) {
	r2 := NewR2Score()
	require.NoError(t, r2.Update([]float64{1}, []float64{2}))
	_, ok := r2.Compute()
	assert.False(t, ok, "one sample")

	r2.Reset()
	require.NoError(t, r2.Update([]float64{1, 2}, []float64{3, 3}))
	_, ok = r2.Compute()
	assert.False(t, ok, "constant targets")

	mape := NewMeanAbsolutePercentageError()
	require.NoError(t, mape.Update([]float64{1, 2}, []float64{0, 0}))
	_, ok = mape.Compute()
	assert.False(t, ok, "only zero targets")

	nrmse := mustNRMSE(t, NormalizationRange)
	require.NoError(t, nrmse.Update([]float64{1, 2}, []float64{4, 4}))
	_, ok = nrmse.Compute()
	assert.False(t, ok, "zero range")
}

func TestRegressionValidation(t *testing.T) {
	m := NewMeanSquaredError()
	assert.ErrorIs(t, m.Update([]float64{1}, []float64{1, 2}), api.ErrLengthMismatch)
	assert.ErrorIs(t, m.Update(nil, nil), api.ErrEmptyInput)
	assert.ErrorIs(t, m.Update([]float64{1, math.NaN()}, []float64{1, 2}), api.ErrInvalidValue)
	assert.ErrorIs(t, m.Update([]float64{1, 2}, []float64{math.Inf(1), 2}), api.ErrInvalidValue)
	_, ok := m.Compute()
	assert.False(t, ok)

	_, err := NewNormalizedRootMeanSquaredError(Normalization(7))
	assert.ErrorIs(t, err, api.ErrInvalidConfiguration)
	n, err := ParseNormalization("L2")
	require.NoError(t, err)
	assert.Equal(t, NormalizationL2, n)
	_, err = ParseNormalization("max")
	assert.ErrorIs(t, err, api.ErrInvalidConfiguration)
}
