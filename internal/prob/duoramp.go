package prob

import (
	"fmt"
	"math"

	"github.com/born-ml/probkit/internal/tensor"
)

// RampOption sets one bound of DuoRamp.
type RampOption func(*rampBounds)

type rampBounds struct {
	low, high       float64
	hasLow, hasHigh bool
}

// WithLow sets the lower bound. Without it the ramp is unbounded below.
func WithLow(v float64) RampOption {
	return func(b *rampBounds) {
		b.low, b.hasLow = v, true
	}
}

// WithHigh sets the upper bound. Without it the ramp is unbounded above.
func WithHigh(v float64) RampOption {
	return func(b *rampBounds) {
		b.high, b.hasHigh = v, true
	}
}

func newRampBounds(opts []RampOption) (rampBounds, error) {
	var b rampBounds
	for _, opt := range opts {
		opt(&b)
	}

	if (b.hasLow && math.IsNaN(b.low)) || (b.hasHigh && math.IsNaN(b.high)) {
		return b, fmt.Errorf("%w: NaN bound", ErrInvalidBounds)
	}
	if b.hasLow && b.hasHigh && b.low > b.high {
		return b, fmt.Errorf("%w: low %v > high %v", ErrInvalidBounds, b.low, b.high)
	}
	return b, nil
}

func (b rampBounds) apply(values []float64) {
	for i, v := range values {
		switch {
		case b.hasLow && v < b.low:
			values[i] = b.low
		case b.hasHigh && v > b.high:
			values[i] = b.high
		}
	}
}

// DuoRamp clamps every element of x into [low, high].
//
// Elements below the low bound become low and elements above the high bound
// become high; NaN elements are left unchanged. x is not modified.
//
// Example:
//
//	x, _ := tensor.Vector(1, 3, 7)
//	y, _ := prob.DuoRamp(x, prob.WithLow(2), prob.WithHigh(5)) // [2 3 5]
func DuoRamp(x *tensor.Tensor, opts ...RampOption) (*tensor.Tensor, error) {
	b, err := newRampBounds(opts)
	if err != nil {
		return nil, fmt.Errorf("duoramp: %w", err)
	}

	out := x.Clone()
	b.apply(out.Data())
	return out, nil
}

// DuoRampSlice is DuoRamp for a plain slice. The result is a new slice.
func DuoRampSlice(values []float64, opts ...RampOption) ([]float64, error) {
	b, err := newRampBounds(opts)
	if err != nil {
		return nil, fmt.Errorf("duoramp: %w", err)
	}

	out := append([]float64(nil), values...)
	b.apply(out)
	return out, nil
}
