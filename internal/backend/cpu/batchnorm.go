package cpu

import (
	"fmt"
	"math"

	"github.com/skair39/mkl-dnn/internal/parallel"
	"github.com/skair39/mkl-dnn/internal/tensor"
)

// BatchNormForward computes per-channel batch normalization over a 4-D
// (N, C, H, W) input:
//
//	mean[c]   = 1/(N*H*W) * sum src[n,c,h,w]
//	invstd[c] = 1 / sqrt(var[c] + eps)
//	dst[...]  = scale[c] * (src[...] - mean[c]) * invstd[c] + shift[c]
//
// scaleshift is (2, C): row 0 is the per-channel scale, row 1 the shift.
// A non-nil ws signals training mode: mean and invstd are written into its
// two rows for a later backward call. With a nil ws (inference) the
// statistics live in per-channel locals and are discarded.
//
// The three passes per channel run in this order by necessity: variance
// needs the finished mean, normalization needs the finished invstd. All
// addressing goes through each tensor's offset descriptor, so any layout
// the descriptors can express is supported.
//
// Shape conformance and eps >= 0 are the caller's contract (checked at the
// bnorm package boundary, not here).
func (cpu *CPUBackend) BatchNormForward(src, scaleshift, dst, ws *tensor.RawTensor, eps float64) {
	switch src.DType() {
	case tensor.Float32:
		batchNormForward[float32](src, scaleshift, dst, ws, eps, cpu.pool)
	case tensor.Float64:
		batchNormForward[float64](src, scaleshift, dst, ws, eps, cpu.pool)
	default:
		panic(fmt.Sprintf("batchnorm forward: unsupported dtype %s", src.DType()))
	}
}

func batchNormForward[T tensor.Float](src, scaleshift, dst, ws *tensor.RawTensor, eps float64, cfg parallel.Config) {
	srcData := tensor.Floats[T](src)
	ssData := tensor.Floats[T](scaleshift)
	dstData := tensor.Floats[T](dst)

	var wsData []T
	training := ws != nil
	if training {
		wsData = tensor.Floats[T](ws)
	}

	shape := src.Shape()
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	nhw := float64(n * h * w)

	// Channels are independent: each iteration touches only its own slice
	// of dst (and ws), so the fan-out needs no synchronization beyond the
	// final join.
	parallel.For(c, func(ch int) {
		var sum T
		for in := 0; in < n; in++ {
			for ih := 0; ih < h; ih++ {
				for iw := 0; iw < w; iw++ {
					sum += srcData[src.Offset(in, ch, ih, iw)]
				}
			}
		}
		mean := T(float64(sum) / nhw)

		var varSum T
		for in := 0; in < n; in++ {
			for ih := 0; ih < h; ih++ {
				for iw := 0; iw < w; iw++ {
					d := srcData[src.Offset(in, ch, ih, iw)] - mean
					varSum += d * d
				}
			}
		}
		invstd := T(1.0 / math.Sqrt(float64(varSum)/nhw+eps))

		if training {
			wsData[ws.Offset(0, ch)] = mean
			wsData[ws.Offset(1, ch)] = invstd
		}

		scale := ssData[scaleshift.Offset(0, ch)]
		shift := ssData[scaleshift.Offset(1, ch)]
		for in := 0; in < n; in++ {
			for ih := 0; ih < h; ih++ {
				for iw := 0; iw < w; iw++ {
					x := srcData[src.Offset(in, ch, ih, iw)]
					dstData[dst.Offset(in, ch, ih, iw)] = scale*(x-mean)*invstd + shift
				}
			}
		}
	}, cfg)
}
