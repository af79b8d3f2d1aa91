package prob

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/born-ml/probkit/internal/tensor"
)

// Mode selects the output alphabet of Collapse.
type Mode int

// Collapse modes. The zero value is not a valid mode.
const (
	// Binary collapses to {0, 1}. Negative probabilities always yield 0.
	Binary Mode = iota + 1
	// Ternary collapses to {-1, 0, 1}, keeping the sign of active outcomes.
	Ternary
)

// String returns the short name of the mode ("bin" or "ter").
func (m Mode) String() string {
	switch m {
	case Binary:
		return "bin"
	case Ternary:
		return "ter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "bin"/"binary" and "ter"/"ternary" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bin", "binary":
		return Binary, nil
	case "ter", "ternary":
		return Ternary, nil
	default:
		return 0, fmt.Errorf("%w: %q (want bin or ter)", ErrInvalidMode, s)
	}
}

// CollapseConfig configures a Collapser.
type CollapseConfig struct {
	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultCollapseConfig returns a configuration with a random seed.
func DefaultCollapseConfig() CollapseConfig {
	return CollapseConfig{Seed: -1}
}

// Collapser draws the uniform samples for Collapse from its own source.
// A Collapser is not safe for concurrent use.
type Collapser struct {
	config CollapseConfig
	rng    *rand.Rand
}

// NewCollapser creates a Collapser. A non-negative seed makes every call
// sequence reproducible.
func NewCollapser(config CollapseConfig) *Collapser {
	var src rand.Source
	if config.Seed >= 0 {
		src = rand.NewPCG(uint64(config.Seed), 0) //nolint:gosec // G115: seed is non-negative
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // G404: sampling does not need crypto/rand
	}

	return &Collapser{
		config: config,
		rng:    rand.New(src), //nolint:gosec // G404: sampling does not need crypto/rand
	}
}

// Config returns the configuration the Collapser was created with.
func (c *Collapser) Config() CollapseConfig {
	return c.config
}

// Collapse is the package-level Collapse drawing from the Collapser's source.
func (c *Collapser) Collapse(p *tensor.Tensor, mode Mode) (*tensor.Tensor, error) {
	return collapse(p, mode, c.rng.Float64)
}

// Collapse turns signed probabilities into discrete states.
//
// For each element an independent u is drawn uniformly from [0, 1). The
// element is active when |p| >= u. Active elements become 1 when p >= 0;
// negative active elements become -1 in Ternary mode and 0 in Binary mode.
// Inactive elements are always 0. Elements with |p| >= 1 are therefore
// always active.
//
// Samples come from the process-wide math/rand/v2 source. Use a Collapser
// for reproducible results.
func Collapse(p *tensor.Tensor, mode Mode) (*tensor.Tensor, error) {
	return collapse(p, mode, rand.Float64) //nolint:gosec // G404: sampling does not need crypto/rand
}

func collapse(p *tensor.Tensor, mode Mode, uniform func() float64) (*tensor.Tensor, error) {
	if mode != Binary && mode != Ternary {
		return nil, fmt.Errorf("collapse: %w: %v", ErrInvalidMode, mode)
	}

	out := tensor.ZerosLike(p)
	dst := out.Data()
	for i, v := range p.Data() {
		// NaN is never active.
		if active := math.Abs(v) >= uniform(); !active {
			continue
		}
		switch {
		case v >= 0:
			dst[i] = 1
		case mode == Ternary:
			dst[i] = -1
		}
	}
	return out, nil
}
