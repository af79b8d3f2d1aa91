// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package prob

import (
	"github.com/born-ml/probkit/internal/prob"
	"github.com/born-ml/probkit/internal/tensor"
)

// Mode selects the output alphabet of Collapse.
type Mode = prob.Mode

// Collapse modes.
const (
	// Binary collapses to {0, 1}.
	Binary Mode = prob.Binary
	// Ternary collapses to {-1, 0, 1}.
	Ternary Mode = prob.Ternary
)

// DefaultTemperature is the standard temperature of Logistic and Softmax.
const DefaultTemperature = prob.DefaultTemperature

// Errors returned by the prob functions. Use errors.Is to match them.
var (
	ErrInvalidMode        = prob.ErrInvalidMode
	ErrInvalidTemperature = prob.ErrInvalidTemperature
	ErrInvalidBounds      = prob.ErrInvalidBounds
	ErrInvalidBase        = prob.ErrInvalidBase
	ErrNaN                = prob.ErrNaN
	ErrNoFiniteValue      = prob.ErrNoFiniteValue
	ErrZeroMass           = prob.ErrZeroMass
	ErrNotMatrix          = prob.ErrNotMatrix
	ErrShapeMismatch      = prob.ErrShapeMismatch
)

// ParseMode converts "bin"/"binary" and "ter"/"ternary" to a Mode.
func ParseMode(s string) (Mode, error) {
	return prob.ParseMode(s)
}

// Collapse

// CollapseConfig configures a Collapser.
type CollapseConfig = prob.CollapseConfig

// Collapser collapses probabilities using its own random source.
type Collapser = prob.Collapser

// DefaultCollapseConfig returns a configuration with a random seed.
func DefaultCollapseConfig() CollapseConfig {
	return prob.DefaultCollapseConfig()
}

// NewCollapser creates a Collapser.
//
// Example:
//
//	c := prob.NewCollapser(prob.CollapseConfig{Seed: 42})
func NewCollapser(config CollapseConfig) *Collapser {
	return prob.NewCollapser(config)
}

// Collapse turns signed probabilities into discrete states using the
// process-wide random source.
//
// Example:
//
//	p, _ := tensor.Vector(0.9, -0.4, 0)
//	states, err := prob.Collapse(p, prob.Ternary) // e.g. [1 0 0]
func Collapse(p *tensor.Tensor, mode Mode) (*tensor.Tensor, error) {
	return prob.Collapse(p, mode)
}

// Clamping

// RampOption sets one bound of DuoRamp.
type RampOption = prob.RampOption

// WithLow sets the lower bound of DuoRamp.
func WithLow(v float64) RampOption {
	return prob.WithLow(v)
}

// WithHigh sets the upper bound of DuoRamp.
func WithHigh(v float64) RampOption {
	return prob.WithHigh(v)
}

// DuoRamp clamps every element of x into [low, high].
//
// Example:
//
//	x, _ := tensor.Vector(1, 3, 7)
//	y, err := prob.DuoRamp(x, prob.WithLow(2), prob.WithHigh(5)) // [2 3 5]
func DuoRamp(x *tensor.Tensor, opts ...RampOption) (*tensor.Tensor, error) {
	return prob.DuoRamp(x, opts...)
}

// DuoRampSlice clamps a plain slice into a new slice.
func DuoRampSlice(values []float64, opts ...RampOption) ([]float64, error) {
	return prob.DuoRampSlice(values, opts...)
}

// Transforms

// Logistic applies the temperature-scaled logistic function element-wise.
func Logistic(x *tensor.Tensor, temperature float64) (*tensor.Tensor, error) {
	return prob.Logistic(x, temperature)
}

// LogisticScalar evaluates the logistic function of a single value.
func LogisticScalar(x, temperature float64) float64 {
	return prob.LogisticScalar(x, temperature)
}

// Softmax converts each row of a 2-D tensor into a probability distribution.
//
// Example:
//
//	x, _ := tensor.FromRows([][]float64{{1, 1, 0}})
//	p, err := prob.Softmax(x, 0) // [[0.5 0.5 0]]
func Softmax(x *tensor.Tensor, temperature float64) (*tensor.Tensor, error) {
	return prob.Softmax(x, temperature)
}

// Information measures

// LogOption configures the logarithm base of Entropy and KLDivergence.
type LogOption = prob.LogOption

// WithBase sets the logarithm base (default e).
func WithBase(base float64) LogOption {
	return prob.WithBase(base)
}

// Entropy returns the Shannon entropy of every row of a 2-D tensor.
func Entropy(p *tensor.Tensor, opts ...LogOption) (*tensor.Tensor, error) {
	return prob.Entropy(p, opts...)
}

// KLDivergence returns the Kullback-Leibler divergence of p from q,
// summed over all elements.
func KLDivergence(p, q *tensor.Tensor, opts ...LogOption) (float64, error) {
	return prob.KLDivergence(p, q, opts...)
}
