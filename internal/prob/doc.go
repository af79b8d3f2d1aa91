// Package prob implements the stateless probability primitives of probkit.
//
// Every function takes its array arguments as *tensor.Tensor, never mutates
// them, and returns freshly allocated results:
//   - Collapse: stochastic binarization of signed probabilities
//   - DuoRamp: two-sided clamping
//   - Logistic: temperature-scaled sigmoid, stable for extreme inputs
//   - Softmax: row-wise temperature softmax with max shifting
//   - Entropy: row-wise Shannon entropy in any logarithmic base
//   - KLDivergence: Kullback-Leibler divergence of two flattened distributions
//
// Exponentials are always evaluated with non-positive arguments, so none of
// the transforms overflow regardless of input magnitude.
package prob
