package clustering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
)

func TestMutualInfoScore(t *testing.T) {
	tests := []struct {
		name        string
		predictions []int
		targets     []int
		want        float64
	}{
		{
			name:        "mixed assignment",
			predictions: []int{2, 1, 0, 1, 0},
			targets:     []int{0, 2, 1, 1, 0},
			want:        0.500402423538188,
		},
		{
			name:        "identical up to relabeling",
			predictions: []int{1, 1, 0, 0},
			targets:     []int{0, 0, 1, 1},
			want:        math.Ln2,
		},
		{
			name:        "independent",
			predictions: []int{0, 1, 0, 1},
			targets:     []int{0, 0, 1, 1},
			want:        0,
		},
		{
			name:        "single cluster",
			predictions: []int{3, 3, 3},
			targets:     []int{0, 1, 2},
			want:        0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMutualInfoScore()
			require.NoError(t, m.Update(tt.predictions, tt.targets))
			got, ok := m.Compute()
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-12)

			again, _ := m.Compute()
			assert.Equal(t, got, again)
		})
	}
}

func TestMutualInfoScoreBatches(t *testing.T) {
	m := NewMutualInfoScore()
	require.NoError(t, m.Update([]int{2, 1}, []int{0, 2}))
	require.NoError(t, m.Update([]int{0, 1, 0}, []int{1, 1, 0}))
	got, ok := m.Compute()
	require.True(t, ok)
	assert.InDelta(t, 0.500402423538188, got, 1e-12)

	m.Reset()
	_, ok = m.Compute()
	assert.False(t, ok)
}

func TestMutualInfoScoreValidation(t *testing.T) {
	m := NewMutualInfoScore()
	assert.ErrorIs(t, m.Update([]int{0}, []int{0, 1}), api.ErrLengthMismatch)
	assert.ErrorIs(t, m.Update(nil, nil), api.ErrEmptyInput)
	assert.ErrorIs(t, m.Update([]int{0, -1}, []int{0, 1}), api.ErrInvalidLabel)
	_, ok := m.Compute()
	assert.False(t, ok)
}
