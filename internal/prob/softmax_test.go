package prob

import (
	"math"
	"testing"

	"github.com/born-ml/probkit/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func assertRowStochastic(t *testing.T, p *tensor.Tensor) {
	t.Helper()
	rows, _, err := p.Dims()
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		row := p.RowView(i)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "row %d", i)
		}
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-12, "row %d sum", i)
	}
}

func TestSoftmax_Basic(t *testing.T) {
	x := mustRows(t, []float64{1, 2, 3}, []float64{0, 0, 0})
	p, err := Softmax(x, DefaultTemperature)
	require.NoError(t, err)
	assert.Equal(t, x.Shape(), p.Shape())
	assertRowStochastic(t, p)

	e1, e2, e3 := math.Exp(1), math.Exp(2), math.Exp(3)
	sum := e1 + e2 + e3
	assert.InDeltaSlice(t, []float64{e1 / sum, e2 / sum, e3 / sum}, p.RowView(0), 1e-12)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, p.RowView(1), 1e-12)
}

func TestSoftmax_ZeroTemperatureTies(t *testing.T) {
	x := mustRows(t,
		[]float64{1, 1, 0},
		[]float64{-5, 2, 1},
		[]float64{3, 3, 3},
	)
	p, err := Softmax(x, 0)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0.5, 0.5, 0},
		{0, 1, 0},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	}, p.Rows())
}

func TestSoftmax_Temperature(t *testing.T) {
	x := mustRows(t, []float64{1, 2})

	hot, err := Softmax(x, 10)
	require.NoError(t, err)
	cold, err := Softmax(x, 0.1)
	require.NoError(t, err)

	// Lower temperature sharpens toward the max.
	assert.Greater(t, cold.At(0, 1), hot.At(0, 1))
	assert.InDelta(t, LogisticScalar(1, 10), hot.At(0, 1), 1e-12)
	assert.InDelta(t, LogisticScalar(1, 0.1), cold.At(0, 1), 1e-12)
}

func TestSoftmax_ShiftInvariant(t *testing.T) {
	a, err := Softmax(mustRows(t, []float64{1, 2, 3}), 1)
	require.NoError(t, err)
	b, err := Softmax(mustRows(t, []float64{1001, 1002, 1003}), 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, a.Data(), b.Data(), 1e-12)
}

func TestSoftmax_ExtremeValues(t *testing.T) {
	x := mustRows(t,
		[]float64{1e308, -1e308, 0},
		[]float64{-1e308, -1e308, -1e308},
		[]float64{710, 709, 0},
	)
	p, err := Softmax(x, 1)
	require.NoError(t, err)
	assertRowStochastic(t, p)
	assert.Equal(t, []float64{1, 0, 0}, p.RowView(0))
}

func TestSoftmax_Infinities(t *testing.T) {
	inf := math.Inf(1)

	p, err := Softmax(mustRows(t, []float64{math.Inf(-1), 0, 0}), 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0.5}, p.Data())

	p, err = Softmax(mustRows(t, []float64{inf, 1, inf}), 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0.5}, p.Data())
}

func TestSoftmax_Errors(t *testing.T) {
	inf := math.Inf(1)

	_, err := Softmax(mustVector(t, 1, 2, 3), 1)
	require.ErrorIs(t, err, ErrNotMatrix)

	_, err = Softmax(mustRows(t, []float64{1, 2}), -1)
	require.ErrorIs(t, err, ErrInvalidTemperature)

	_, err = Softmax(mustRows(t, []float64{1, 2}, []float64{math.Inf(-1), math.Inf(-1)}), 1)
	require.ErrorIs(t, err, ErrNoFiniteValue)
	assert.Contains(t, err.Error(), "row 1")

	_, err = Softmax(mustRows(t, []float64{inf, math.Inf(-1)}), 0)
	require.ErrorIs(t, err, ErrNoFiniteValue)

	_, err = Softmax(mustRows(t, []float64{1, math.NaN()}), 1)
	require.ErrorIs(t, err, ErrNaN)
}

func TestSoftmax_DoesNotMutateInput(t *testing.T) {
	x := mustRows(t, []float64{3, 1, 2})
	_, err := Softmax(x, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, x.Data())
}

func TestSoftmax_ManyRows(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{50, 7})
	data := x.Data()
	for i := range data {
		data[i] = math.Sin(float64(i)) * float64(i%13) * 40
	}
	for _, temp := range []float64{0, 0.01, 1, 100} {
		p, err := Softmax(x, temp)
		require.NoError(t, err)
		assertRowStochastic(t, p)
	}
}
