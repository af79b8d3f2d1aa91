// Package tensor provides the dense float64 array type used by probkit.
package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense, row-major array of float64 values.
//
// Constructors copy their input, so a Tensor never aliases caller memory.
// Operations in probkit treat tensors as immutable and return new ones.
//
// Example:
//
//	t, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	v := t.At(1, 2) // 6
type Tensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// newTensor wraps data without copying. The caller guarantees that
// len(data) == shape.NumElements().
func newTensor(data []float64, shape Shape) *Tensor {
	return &Tensor{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    data,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return newTensor(buf, shape.Clone()), nil
}

// Vector creates a 1-D tensor holding a copy of values.
func Vector(values ...float64) (*Tensor, error) {
	return FromSlice(values, Shape{len(values)})
}

// FromRows creates a 2-D tensor from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	cols := len(rows[0])
	shape := Shape{len(rows), cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	buf := make([]float64, 0, shape.NumElements())
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrRaggedRows, i, len(row), cols)
		}
		buf = append(buf, row...)
	}
	return newTensor(buf, shape), nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the tensor's underlying storage in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Dims returns the number of rows and columns of a 2-D tensor.
func (t *Tensor) Dims() (rows, cols int, err error) {
	if len(t.shape) != 2 {
		return 0, 0, fmt.Errorf("%w: got shape %v", ErrNotMatrix, t.shape)
	}
	return t.shape[0], t.shape[1], nil
}

// RowView returns row i of a 2-D tensor as a slice sharing the tensor's memory.
// Panics if the tensor is not 2-D or i is out of range.
func (t *Tensor) RowView(i int) []float64 {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("RowView() only works for 2-D tensors, got shape %v", t.shape))
	}
	if i < 0 || i >= t.shape[0] {
		panic(fmt.Sprintf("row %d out of bounds (rows %d)", i, t.shape[0]))
	}
	cols := t.shape[1]
	return t.data[i*cols : (i+1)*cols : (i+1)*cols]
}

// Rows returns a copy of a 2-D tensor as a slice of rows.
// Tensors of any other rank are returned as a single flattened row.
func (t *Tensor) Rows() [][]float64 {
	cols := t.NumElements()
	if len(t.shape) == 2 {
		cols = t.shape[1]
	}
	rows := make([][]float64, 0, len(t.data)/cols)
	for start := 0; start < len(t.data); start += cols {
		row := make([]float64, cols)
		copy(row, t.data[start:start+cols])
		rows = append(rows, row)
	}
	return rows
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)
	return newTensor(buf, t.shape.Clone())
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v", t.shape)
	if len(t.data) <= 16 {
		fmt.Fprintf(&sb, " %v", t.data)
	}
	return sb.String()
}
