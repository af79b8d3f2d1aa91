// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package prob provides numerically stable probability primitives.
//
// # Overview
//
// This package contains:
//   - Collapse: stochastic binarization of signed probabilities
//   - DuoRamp: clamping into [low, high]
//   - Logistic: temperature-scaled sigmoid
//   - Softmax: row-wise temperature softmax
//   - Entropy: row-wise Shannon entropy
//   - KLDivergence: Kullback-Leibler divergence
//
// All functions are pure apart from the random draws of Collapse. Inputs are
// never modified.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/probkit/prob"
//	    "github.com/born-ml/probkit/tensor"
//	)
//
//	func main() {
//	    scores, _ := tensor.FromRows([][]float64{{1, 2, 3}})
//	    p, err := prob.Softmax(scores, prob.DefaultTemperature)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    h, _ := prob.Entropy(p, prob.WithBase(2)) // bits
//	    fmt.Println(p, h)
//	}
//
// # Temperature
//
// Logistic and Softmax divide their input by a temperature before the
// exponential. Small temperatures sharpen the output; temperature 0 gives
// the limiting step function (Logistic) or uniform-over-argmax (Softmax).
//
// # Reproducibility
//
// Collapse draws from the process-wide random source. For repeatable
// results create a Collapser with a fixed seed:
//
//	c := prob.NewCollapser(prob.CollapseConfig{Seed: 42})
//	states, err := c.Collapse(p, prob.Ternary)
package prob
