package prob

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuoRamp(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		opts []RampOption
		want []float64
	}{
		{"both bounds", []float64{1, 3, 7}, []RampOption{WithLow(2), WithHigh(5)}, []float64{2, 3, 5}},
		{"low only", []float64{-3, 0, 3}, []RampOption{WithLow(0)}, []float64{0, 0, 3}},
		{"high only", []float64{-3, 0, 3}, []RampOption{WithHigh(0)}, []float64{-3, 0, 0}},
		{"unbounded", []float64{-1e300, 1e300}, nil, []float64{-1e300, 1e300}},
		{"equal bounds", []float64{-1, 0, 1}, []RampOption{WithLow(0.5), WithHigh(0.5)}, []float64{0.5, 0.5, 0.5}},
		{"infinities", []float64{math.Inf(-1), math.Inf(1)}, []RampOption{WithLow(0), WithHigh(1)}, []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustVector(t, tt.in...)
			y, err := DuoRamp(x, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, y.Data())
			assert.Equal(t, tt.in, x.Data(), "input must not be modified")
		})
	}
}

func TestDuoRamp_PreservesShape(t *testing.T) {
	x := mustRows(t, []float64{-1, 2}, []float64{3, -4})
	y, err := DuoRamp(x, WithLow(0), WithHigh(2))
	require.NoError(t, err)
	assert.Equal(t, x.Shape(), y.Shape())
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, y.Rows())
}

func TestDuoRamp_NaNPassesThrough(t *testing.T) {
	y, err := DuoRampSlice([]float64{nan(), 10}, WithHigh(1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(y[0]))
	assert.Equal(t, 1.0, y[1])
}

func TestDuoRamp_InvalidBounds(t *testing.T) {
	x := mustVector(t, 1)

	_, err := DuoRamp(x, WithLow(5), WithHigh(2))
	require.ErrorIs(t, err, ErrInvalidBounds)

	_, err = DuoRamp(x, WithLow(nan()))
	require.ErrorIs(t, err, ErrInvalidBounds)

	_, err = DuoRampSlice([]float64{1}, WithHigh(nan()))
	require.ErrorIs(t, err, ErrInvalidBounds)
}

func TestDuoRampSlice_Copies(t *testing.T) {
	in := []float64{1, 3, 7}
	out, err := DuoRampSlice(in, WithLow(2), WithHigh(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 5}, out)
	assert.Equal(t, []float64{1, 3, 7}, in)
}

func nan() float64 {
	return math.NaN()
}
