package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix copies a gonum matrix into a 2-D tensor.
func FromMatrix(m mat.Matrix) (*Tensor, error) {
	r, c := m.Dims()
	shape := Shape{r, c}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	buf := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf = append(buf, m.At(i, j))
		}
	}
	return newTensor(buf, shape), nil
}

// Matrix copies a 2-D tensor into a new gonum dense matrix.
func (t *Tensor) Matrix() (*mat.Dense, error) {
	r, c, err := t.Dims()
	if err != nil {
		return nil, fmt.Errorf("to matrix: %w", err)
	}
	buf := make([]float64, len(t.data))
	copy(buf, t.data)
	return mat.NewDense(r, c, buf), nil
}
