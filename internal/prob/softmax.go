package prob

import (
	"fmt"
	"math"

	"github.com/born-ml/probkit/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Softmax converts each row of a 2-D tensor of scores into a probability
// distribution.
//
// Each row is shifted by its maximum before exponentiation, so the largest
// exponent is exp(0) and the transform never overflows. At temperature 0 the
// row becomes the uniform distribution over the positions holding the row
// maximum. A row containing +Inf puts uniform mass on its +Inf positions for
// the same reason. -Inf scores receive probability 0.
//
// Errors:
//   - ErrNotMatrix: x is not 2-D
//   - ErrInvalidTemperature: temperature is negative, NaN or infinite
//   - ErrNaN: a row contains NaN
//   - ErrNoFiniteValue: a row has no finite score
//
// Example:
//
//	x, _ := tensor.FromRows([][]float64{{1, 1, 0}})
//	p, _ := prob.Softmax(x, 0) // [[0.5 0.5 0]]
func Softmax(x *tensor.Tensor, temperature float64) (*tensor.Tensor, error) {
	if err := checkTemperature(temperature); err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	rows, _, err := x.Dims()
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}

	out := tensor.ZerosLike(x)
	for i := 0; i < rows; i++ {
		if err := softmaxRow(out.RowView(i), x.RowView(i), temperature); err != nil {
			return nil, fmt.Errorf("softmax: row %d: %w", i, err)
		}
	}
	return out, nil
}

// softmaxRow writes the softmax of src into dst. len(dst) == len(src) > 0.
func softmaxRow(dst, src []float64, temperature float64) error {
	if floats.HasNaN(src) {
		return ErrNaN
	}
	if floats.Count(isFinite, src) == 0 {
		return ErrNoFiniteValue
	}

	maxVal := floats.Max(src)
	if temperature == 0 || math.IsInf(maxVal, 1) {
		uniformOver(dst, src, maxVal)
		return nil
	}

	for j, v := range src {
		dst[j] = math.Exp((v - maxVal) / temperature)
	}
	// The max position contributes exp(0) = 1, so the sum is at least 1.
	floats.Scale(1/floats.Sum(dst), dst)
	return nil
}

// uniformOver spreads unit mass evenly over the positions of src equal to target.
func uniformOver(dst, src []float64, target float64) {
	n := floats.Count(func(v float64) bool { return v == target }, src)
	w := 1 / float64(n)
	for j, v := range src {
		if v == target {
			dst[j] = w
		} else {
			dst[j] = 0
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
