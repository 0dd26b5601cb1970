// Package cpu implements the pure Go reference kernels for the CPU backend.
package cpu

import (
	"github.com/skair39/mkl-dnn/internal/parallel"
	"github.com/skair39/mkl-dnn/internal/tensor"
)

// CPUBackend implements the normalization kernels on CPU. Per-channel work
// is fanned out over goroutines according to the parallel config.
type CPUBackend struct {
	device tensor.Device
	pool   parallel.Config
}

// New creates a new CPU backend with the default worker configuration.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		pool:   parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with an explicit worker configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		pool:   cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
