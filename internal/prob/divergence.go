package prob

import (
	"fmt"

	"github.com/born-ml/probkit/internal/tensor"
	"gonum.org/v1/gonum/stat"
)

// KLDivergence returns the Kullback-Leibler divergence Σ p·log(p/q) of two
// tensors of identical shape, summed over all elements (not per row).
//
// Elements where p is 0 contribute 0. The result is in the base given by
// WithBase (natural log by default). q is not checked for zeros: a zero in q
// where p is non-zero yields +Inf, as the arithmetic dictates.
func KLDivergence(p, q *tensor.Tensor, opts ...LogOption) (float64, error) {
	denom, err := logDenominator(opts)
	if err != nil {
		return 0, fmt.Errorf("kl divergence: %w", err)
	}
	if !p.Shape().Equal(q.Shape()) {
		return 0, fmt.Errorf("kl divergence: %w: p %v, q %v", ErrShapeMismatch, p.Shape(), q.Shape())
	}

	return stat.KullbackLeibler(p.Data(), q.Data()) / denom, nil
}
