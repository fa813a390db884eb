package classification

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
)

func TestBinaryHingeLoss(t *testing.T) {
	tests := []struct {
		name    string
		squared bool
		want    float64
	}{
		{"plain", false, 0.69},
		{"squared", true, 0.6905},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBinaryHingeLoss(HingeOptions{Squared: tt.squared})
			_, ok := m.Compute()
			require.False(t, ok)

			require.NoError(t, m.Update([]float64{0.25, 0.25, 0.55}, []int{-1, -1, 1}))
			require.NoError(t, m.Update([]float64{0.75, 0.75}, []int{1, 1}))
			got, ok := m.Compute()
			require.True(t, ok)
			require.InDelta(t, tt.want, got, 1e-12)

			m.Reset()
			_, ok = m.Compute()
			require.False(t, ok)
		})
	}
}

func TestBinaryHingeLossUsesRawMargins(t *testing.T) {
	m := NewBinaryHingeLoss(HingeOptions{})
	require.NoError(t, m.Update([]float64{3, -2}, []int{1, 1}))
	got, _ := m.Compute()
	require.InDelta(t, 1.5, got, 1e-12)

	require.ErrorIs(t, m.Update([]float64{0.2}, []int{0}), api.ErrInvalidLabel)
	require.ErrorIs(t, m.Update([]float64{math.NaN()}, []int{1}), api.ErrInvalidValue)
	again, _ := m.Compute()
	require.Equal(t, got, again)
}

func TestMulticlassHingeLoss(t *testing.T) {
	_, err := NewMulticlassHingeLoss(1, HingeOptions{})
	require.ErrorIs(t, err, api.ErrInvalidConfiguration)

	m, err := NewMulticlassHingeLoss(3, HingeOptions{})
	require.NoError(t, err)
	require.NoError(t, m.Update([][]float64{
		{0.25, 0.2, 0.55},
		{0.55, 0.45, 0.0},
		{3, 0, 1},
	}, []int{2, 0, 0}))
	got, ok := m.Compute()
	require.True(t, ok)
	require.InDelta(t, (0.7+0.9+0)/3, got, 1e-12)

	require.ErrorIs(t, m.Update([][]float64{{1, 2}}, []int{0}), api.ErrInvalidValue)
	require.ErrorIs(t, m.Update([][]float64{{1, 2, 3}}, []int{3}), api.ErrInvalidLabel)
}
