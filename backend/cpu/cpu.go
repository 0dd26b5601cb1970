// Copyright 2026 mkl-dnn Go primitives. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/skair39/mkl-dnn/internal/backend/cpu"
	"github.com/skair39/mkl-dnn/internal/parallel"
	"github.com/skair39/mkl-dnn/tensor"
)

// Backend represents the CPU backend implementation.
//
// It provides pure Go reference kernels for the normalization primitives,
// with per-channel work fanned out across a static goroutine partition.
type Backend = internalcpu.CPUBackend

// Config controls the worker fan-out of the kernels.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with one worker per logical CPU.
//
// Example:
//
//	backend := cpu.New()
//	err := bnorm.Forward(desc, src, scaleshift, dst, bnorm.Inference(), backend)
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit worker configuration.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the default worker configuration.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that forces single-goroutine execution.
func Sequential() Config {
	return parallel.Sequential()
}
