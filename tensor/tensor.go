// Copyright 2026 mkl-dnn Go primitives. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/skair39/mkl-dnn/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for supported element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the logical dimensions of a tensor.
// Example: Shape{2, 16, 28, 28} is a 4D batch in (N, C, H, W) order.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a flat buffer plus the
// shape and stride descriptor mapping logical indices to physical offsets.
type RawTensor = tensor.RawTensor

// Backend is the interface device-specific kernel implementations satisfy.
type Backend = tensor.Backend

// Creation functions

// NewRaw creates a dense row-major tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewRawStrided creates a tensor with a caller-supplied physical layout.
func NewRawStrided(shape Shape, strides []int, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRawStrided(shape, strides, dtype, device)
}

// Floats returns a typed slice view of the buffer for element type T.
func Floats[T Float](r *RawTensor) []T {
	return tensor.Floats[T](r)
}

// DataTypeOf returns the DataType matching the generic element type T.
func DataTypeOf[T Float]() DataType {
	return tensor.DataTypeOf[T]()
}
