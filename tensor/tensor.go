// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/probkit/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// Tensor is a dense row-major float64 array.
type Tensor = tensor.Tensor

// Errors returned by tensor constructors and shape checks.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrNotMatrix     = tensor.ErrNotMatrix
	ErrRaggedRows    = tensor.ErrRaggedRows
)

// Creation functions

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a 1-D tensor.
//
// Example:
//
//	x, err := tensor.Vector(0.2, -0.7, 1)
func Vector(values ...float64) (*Tensor, error) {
	return tensor.Vector(values...)
}

// FromRows creates a 2-D tensor from equally sized rows.
func FromRows(rows [][]float64) (*Tensor, error) {
	return tensor.FromRows(rows)
}

// FromMatrix copies a gonum matrix into a 2-D tensor.
func FromMatrix(m mat.Matrix) (*Tensor, error) {
	return tensor.FromMatrix(m)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 0.5)
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}
