package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for the normalization primitives.
//
// Implementations:
//   - CPU: Pure Go reference kernels
type Backend interface {
	// BatchNormForward computes per-channel batch normalization over a 4-D
	// (N, C, H, W) input. scaleshift is (2, C): row 0 scale, row 1 shift.
	// A non-nil ws signals training mode and receives the per-channel mean
	// and inverse standard deviation in its two rows.
	BatchNormForward(src, scaleshift, dst, ws *RawTensor, eps float64)

	// BatchNormBackward computes gradients w.r.t. input and, when
	// diffScaleshift is non-nil, w.r.t. the scale-shift parameters. It
	// consumes the (mean, invstd) workspace written by a training-mode
	// forward call.
	BatchNormBackward(src, diffDst, scaleshift, ws, diffSrc, diffScaleshift *RawTensor)

	// Metadata
	Name() string
	Device() Device
}
