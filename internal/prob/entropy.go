package prob

import (
	"fmt"

	"github.com/born-ml/probkit/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy of every row of a 2-D tensor.
//
// Rows only need to be proportional to distributions: each row is normalized
// to sum to 1 on a scratch copy before H = -Σ p·log(p) is computed, with the
// convention 0·log(0) = 0. The result is a 1-D tensor with one entropy per
// row, in the base given by WithBase (natural log by default).
//
// Errors:
//   - ErrNotMatrix: p is not 2-D
//   - ErrInvalidBase: the base is not a valid logarithm base
//   - ErrZeroMass: a row sums to zero and cannot be normalized
func Entropy(p *tensor.Tensor, opts ...LogOption) (*tensor.Tensor, error) {
	denom, err := logDenominator(opts)
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	rows, cols, err := p.Dims()
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}

	out := tensor.Zeros(tensor.Shape{rows})
	h := out.Data()
	norm := make([]float64, cols)
	for i := 0; i < rows; i++ {
		row := p.RowView(i)
		sum := floats.Sum(row)
		if sum == 0 {
			return nil, fmt.Errorf("entropy: row %d: %w", i, ErrZeroMass)
		}
		floats.ScaleTo(norm, 1/sum, row)
		e := stat.Entropy(norm) / denom
		if e == 0 {
			e = 0 // drop the sign of -0
		}
		h[i] = e
	}
	return out, nil
}
