package prob

import (
	"fmt"
	"math"
)

// LogOption configures the logarithm used by Entropy and KLDivergence.
type LogOption func(*logConfig)

type logConfig struct {
	base    float64
	hasBase bool
}

// WithBase sets the logarithm base. The default is e (nats); use 2 for bits.
func WithBase(base float64) LogOption {
	return func(c *logConfig) {
		c.base, c.hasBase = base, true
	}
}

// logDenominator returns log(base), the divisor that converts natural-log
// results into the requested base. Without a base it returns 1.
func logDenominator(opts []LogOption) (float64, error) {
	var c logConfig
	for _, opt := range opts {
		opt(&c)
	}
	if !c.hasBase {
		return 1, nil
	}

	if c.base <= 0 || c.base == 1 || math.IsNaN(c.base) || math.IsInf(c.base, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidBase, c.base)
	}
	return math.Log(c.base), nil
}
