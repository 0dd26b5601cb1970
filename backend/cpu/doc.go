// Copyright 2026 mkl-dnn Go primitives. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for the normalization
// primitives.
//
// # Overview
//
// This package implements the reference kernels with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - A static per-channel goroutine fan-out, joined per call
//   - Layout independence via the tensor offset descriptor
//
// # Basic Usage
//
//	import (
//	    "github.com/skair39/mkl-dnn/backend/cpu"
//	    "github.com/skair39/mkl-dnn/bnorm"
//	    "github.com/skair39/mkl-dnn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    desc := bnorm.Desc{N: 32, C: 16, H: 28, W: 28, Eps: 1e-5}
//	    err := bnorm.Forward(desc, src, scaleshift, dst, bnorm.Inference(), backend)
//	    ...
//	}
//
// # Thread Safety
//
// The backend is safe for concurrent use: kernels hold no mutable state
// between calls, and within one call each worker writes a disjoint channel
// slice of the output buffers.
package cpu
