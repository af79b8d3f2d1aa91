package prob

import (
	"errors"

	"github.com/born-ml/probkit/internal/tensor"
)

// Common errors.
var (
	ErrInvalidMode        = errors.New("invalid collapse mode")
	ErrInvalidTemperature = errors.New("temperature must be finite and non-negative")
	ErrInvalidBounds      = errors.New("invalid bounds")
	ErrInvalidBase        = errors.New("logarithm base must be finite, positive and not 1")
	ErrNaN                = errors.New("row contains NaN")
	ErrNoFiniteValue      = errors.New("row has no finite value")
	ErrZeroMass           = errors.New("row sums to zero")

	// Shape errors are shared with the tensor package so errors.Is works
	// against either name.
	ErrNotMatrix     = tensor.ErrNotMatrix
	ErrShapeMismatch = tensor.ErrShapeMismatch
)
