package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
)

func TestAggregator(t *testing.T) {
	values := []float64{3, -1, 4, 2}
	tests := []struct {
		reduction api.Reduction
		want      float64
	}{
		{api.ReductionMean, 2},
		{api.ReductionSum, 8},
		{api.ReductionMin, -1},
		{api.ReductionMax, 4},
	}
	for _, tt := range tests {
		t.Run(tt.reduction.String(), func(t *testing.T) {
			a := New(tt.reduction)
			_, ok := a.Compute()
			require.False(t, ok)

			for _, v := range values {
				a.Add(v)
			}
			got, ok := a.Compute()
			require.True(t, ok)
			require.InDelta(t, tt.want, got, 1e-12)
			require.Equal(t, len(values), a.Total())

			a.Reset()
			_, ok = a.Compute()
			require.False(t, ok)

			a.Add(5)
			got, ok = a.Compute()
			require.True(t, ok)
			require.Equal(t, 5.0, got)
		})
	}
}

func TestZeroValueIsMean(t *testing.T) {
	var a Aggregator
	a.Add(1)
	a.Add(2)
	got, ok := a.Compute()
	require.True(t, ok)
	require.Equal(t, 1.5, got)
}
