package tensor

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNotMatrix     = errors.New("tensor is not two-dimensional")
	ErrRaggedRows    = errors.New("rows have different lengths")
)
