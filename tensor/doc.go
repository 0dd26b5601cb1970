// Copyright 2026 mkl-dnn Go primitives. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the buffer, shape and layout types used by the
// normalization primitives.
//
// # Overview
//
// The central type is RawTensor: a flat, externally visible buffer plus a
// shape/stride descriptor. Kernels address elements exclusively through
// RawTensor.Offset, which maps logical (n, c, h, w) indices to physical
// offsets, so a tensor's physical layout is an independent degree of
// freedom:
//
//	dense := tensor.Shape{2, 16, 28, 28}
//	nchw, _ := tensor.NewRaw(dense, tensor.Float32, tensor.CPU)
//	nhwc, _ := tensor.NewRawStrided(dense, dense.ChannelsLastStrides(), tensor.Float32, tensor.CPU)
//
// Both tensors answer the same logical indices; only the memory walk
// differs.
//
// # Supported Data Types
//
// The primitives instantiate one real floating type per call:
//   - float32 (DataType Float32)
//   - float64 (DataType Float64)
//
// The Float constraint and the generic Floats view tie the compile-time
// element type to the runtime DataType.
package tensor
