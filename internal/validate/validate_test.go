package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datar-psa/gometrics/api"
)

func TestBatch(t *testing.T) {
	tests := []struct {
		name        string
		predictions int
		targets     int
		wantErr     error
	}{
		{"equal lengths", 3, 3, nil},
		{"length mismatch", 2, 1, api.ErrLengthMismatch},
		{"empty", 0, 0, api.ErrEmptyInput},
		{"mismatch wins over empty", 0, 2, api.ErrLengthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Batch(tt.predictions, tt.targets)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValues(t *testing.T) {
	require.NoError(t, Probability(0, 0))
	require.NoError(t, Probability(0, 1))
	require.ErrorIs(t, Probability(0, 1.01), api.ErrInvalidValue)
	require.ErrorIs(t, Probability(0, -0.01), api.ErrInvalidValue)
	require.ErrorIs(t, Finite(0, math.NaN()), api.ErrInvalidValue)
	require.ErrorIs(t, Finite(0, math.Inf(-1)), api.ErrInvalidValue)
	require.NoError(t, Range(0, -3, -5, 5))
}

func TestLabels(t *testing.T) {
	require.NoError(t, Label(0, 2, 3))
	require.ErrorIs(t, Label(0, 3, 3), api.ErrInvalidLabel)
	require.ErrorIs(t, Label(0, -1, 3), api.ErrInvalidLabel)
	require.NoError(t, BinaryLabel(0, 1))
	require.ErrorIs(t, BinaryLabel(0, 2), api.ErrInvalidLabel)
	require.NoError(t, SignLabel(0, -1))
	require.ErrorIs(t, SignLabel(0, 0), api.ErrInvalidLabel)
}

func TestRow(t *testing.T) {
	require.NoError(t, Row(0, []float64{0.1, 0.9}, 2))
	require.ErrorIs(t, Row(0, []float64{0.1}, 2), api.ErrInvalidValue)
	require.ErrorIs(t, Row(0, []float64{0.1, math.NaN()}, 2), api.ErrInvalidValue)
}
