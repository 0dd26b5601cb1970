// Package bnorm is the public entry point for the batch normalization
// primitives.
//
// It pairs a forward kernel (per-channel statistics, normalization, affine
// scale-shift) with a backward kernel (parameter and input gradients) over
// 4-D (N, C, H, W) tensors. The package validates the caller's contract at
// this boundary and hands fully checked buffers to a tensor.Backend; the
// kernels themselves perform no validation on the hot path.
//
// Example:
//
//	backend := cpu.New()
//	desc := bnorm.Desc{N: 32, C: 16, H: 28, W: 28, Eps: 1e-5}
//
//	ws, _ := tensor.NewRaw(tensor.Shape{2, desc.C}, tensor.Float32, tensor.CPU)
//	if err := bnorm.Forward(desc, src, scaleshift, dst, bnorm.Training(ws), backend); err != nil {
//	    ...
//	}
//	if err := bnorm.Backward(desc, src, diffDst, scaleshift, ws, diffSrc, diffScaleshift, backend); err != nil {
//	    ...
//	}
package bnorm

import (
	"errors"
	"fmt"

	"github.com/skair39/mkl-dnn/internal/tensor"
)

// ErrInvalidConfig reports a violated precondition: non-conformant shapes,
// non-positive dimensions, a negative epsilon, mismatched dtypes, or a
// missing workspace. Test with errors.Is.
var ErrInvalidConfig = errors.New("bnorm: invalid configuration")

// Desc is the operation configuration shared by a forward/backward pair:
// the logical dimensions of the activation tensors and the epsilon added
// to the variance before the square root.
//
// Eps = 0 is accepted; combined with a zero-variance channel it yields an
// infinite inverse standard deviation, which the kernels do not clamp.
type Desc struct {
	N, C, H, W int
	Eps        float64
}

func (d Desc) validate() error {
	if d.N <= 0 || d.C <= 0 || d.H <= 0 || d.W <= 0 {
		return fmt.Errorf("%w: dimensions (%d, %d, %d, %d) must all be positive",
			ErrInvalidConfig, d.N, d.C, d.H, d.W)
	}
	if d.Eps < 0 {
		return fmt.Errorf("%w: epsilon %g must be >= 0", ErrInvalidConfig, d.Eps)
	}
	return nil
}

func (d Desc) dataShape() tensor.Shape {
	return tensor.Shape{d.N, d.C, d.H, d.W}
}

func (d Desc) statsShape() tensor.Shape {
	return tensor.Shape{2, d.C}
}

// Mode selects between the two forward-pass variants. Training carries the
// mutable workspace that receives the per-channel statistics; Inference
// carries nothing and the statistics are discarded after use.
type Mode struct {
	training bool
	ws       *tensor.RawTensor
}

// Training returns the training-mode variant. ws must be a (2, C) tensor;
// the forward pass writes the per-channel mean into row 0 and the inverse
// standard deviation 1/sqrt(var+eps) into row 1.
func Training(ws *tensor.RawTensor) Mode {
	return Mode{training: true, ws: ws}
}

// Inference returns the inference-mode variant: no workspace, no
// persisted statistics.
func Inference() Mode {
	return Mode{}
}

// IsTraining reports whether this is the training variant.
func (m Mode) IsTraining() bool {
	return m.training
}

// Forward runs the forward kernel: per-channel mean and inverse standard
// deviation over the (N, H, W) volume, then the affine normalization
//
//	dst = scale[c] * (src - mean[c]) * invstd[c] + shift[c]
//
// dst is fully overwritten. In training mode the statistics are persisted
// into the mode's workspace for a later Backward call.
func Forward(desc Desc, src, scaleshift, dst *tensor.RawTensor, mode Mode, b tensor.Backend) error {
	if err := desc.validate(); err != nil {
		return err
	}
	if err := checkBuffer("src", src, desc.dataShape()); err != nil {
		return err
	}
	if err := checkConformant("scaleshift", scaleshift, desc.statsShape(), src.DType()); err != nil {
		return err
	}
	if err := checkConformant("dst", dst, desc.dataShape(), src.DType()); err != nil {
		return err
	}
	if mode.IsTraining() {
		if err := checkConformant("workspace", mode.ws, desc.statsShape(), src.DType()); err != nil {
			return err
		}
	}

	b.BatchNormForward(src, scaleshift, dst, mode.ws, desc.Eps)
	return nil
}

// Backward runs the backward kernel. It consumes the (mean, invstd)
// workspace written by a matching training-mode Forward call and produces
// the input gradient diffSrc and, when diffScaleshift is non-nil, the
// parameter gradients (row 0 scale, row 1 shift). A nil diffScaleshift
// skips only the store; diffSrc is identical either way.
func Backward(desc Desc, src, diffDst, scaleshift, ws, diffSrc, diffScaleshift *tensor.RawTensor, b tensor.Backend) error {
	if err := desc.validate(); err != nil {
		return err
	}
	if err := checkBuffer("src", src, desc.dataShape()); err != nil {
		return err
	}
	if err := checkConformant("diff_dst", diffDst, desc.dataShape(), src.DType()); err != nil {
		return err
	}
	if err := checkConformant("scaleshift", scaleshift, desc.statsShape(), src.DType()); err != nil {
		return err
	}
	if err := checkConformant("workspace", ws, desc.statsShape(), src.DType()); err != nil {
		return err
	}
	if err := checkConformant("diff_src", diffSrc, desc.dataShape(), src.DType()); err != nil {
		return err
	}
	if diffScaleshift != nil {
		if err := checkConformant("diff_scaleshift", diffScaleshift, desc.statsShape(), src.DType()); err != nil {
			return err
		}
	}

	b.BatchNormBackward(src, diffDst, scaleshift, ws, diffSrc, diffScaleshift)
	return nil
}

// Stats copies the per-channel statistics out of a training-mode workspace.
// Row 0 holds the mean, row 1 the inverse standard deviation.
func Stats[T tensor.Float](ws *tensor.RawTensor) (mean, invstd []T, err error) {
	shape := ws.Shape()
	if len(shape) != 2 || shape[0] != 2 {
		return nil, nil, fmt.Errorf("%w: workspace shape %v, want (2, C)", ErrInvalidConfig, shape)
	}
	if ws.DType() != tensor.DataTypeOf[T]() {
		return nil, nil, fmt.Errorf("%w: workspace dtype %s does not match requested type %s",
			ErrInvalidConfig, ws.DType(), tensor.DataTypeOf[T]())
	}

	c := shape[1]
	data := tensor.Floats[T](ws)
	mean = make([]T, c)
	invstd = make([]T, c)
	for ch := 0; ch < c; ch++ {
		mean[ch] = data[ws.Offset(0, ch)]
		invstd[ch] = data[ws.Offset(1, ch)]
	}
	return mean, invstd, nil
}

func checkBuffer(name string, t *tensor.RawTensor, want tensor.Shape) error {
	if t == nil {
		return fmt.Errorf("%w: %s buffer is nil", ErrInvalidConfig, name)
	}
	if !t.Shape().Equal(want) {
		return fmt.Errorf("%w: %s shape %v, want %v", ErrInvalidConfig, name, t.Shape(), want)
	}
	return nil
}

func checkConformant(name string, t *tensor.RawTensor, want tensor.Shape, dtype tensor.DataType) error {
	if err := checkBuffer(name, t, want); err != nil {
		return err
	}
	if t.DType() != dtype {
		return fmt.Errorf("%w: %s dtype %s does not match src dtype %s",
			ErrInvalidConfig, name, t.DType(), dtype)
	}
	return nil
}
