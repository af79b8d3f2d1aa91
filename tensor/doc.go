// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense array type used throughout probkit.
//
// # Overview
//
// A Tensor is a row-major array of float64 values with a Shape. Every
// constructor copies its input, and probkit operations never modify their
// arguments, so tensors can be shared freely between calls.
//
// # Basic Usage
//
//	import "github.com/born-ml/probkit/tensor"
//
//	func main() {
//	    x, err := tensor.FromRows([][]float64{
//	        {1, 2, 3},
//	        {4, 5, 6},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Shape()) // [2 3]
//	}
//
// # Interoperability
//
// Two-dimensional tensors convert to and from gonum matrices with FromMatrix
// and Tensor.Matrix. Both directions copy.
package tensor
