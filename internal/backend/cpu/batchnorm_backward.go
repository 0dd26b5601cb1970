package cpu

import (
	"fmt"

	"github.com/skair39/mkl-dnn/internal/parallel"
	"github.com/skair39/mkl-dnn/internal/tensor"
)

// BatchNormBackward computes the batch normalization gradients for a 4-D
// (N, C, H, W) input from the upstream gradient diffDst and the (mean,
// invstd) workspace persisted by a training-mode forward call:
//
//	diffGamma[c] = invstd[c] * sum (src[...] - mean[c]) * diffDst[...]
//	diffBeta[c]  = sum diffDst[...]
//	diffSrc[...] = scale[c] * invstd[c] * (diffDst[...]
//	               - diffBeta[c]/(N*H*W)
//	               - (src[...]-mean[c]) * diffGamma[c] * invstd[c]/(N*H*W))
//
// Only the scale row of scaleshift is read. diffScaleshift may be nil, in
// which case the parameter gradients are still accumulated (the diffSrc
// pass needs both sums) but not stored anywhere.
//
// The two passes per channel are ordered: the element-wise diffSrc pass
// starts only after both channel sums are final. Pairing with a matching
// training-mode forward call is the caller's contract; the workspace
// contents are consumed verbatim.
func (cpu *CPUBackend) BatchNormBackward(src, diffDst, scaleshift, ws, diffSrc, diffScaleshift *tensor.RawTensor) {
	switch src.DType() {
	case tensor.Float32:
		batchNormBackward[float32](src, diffDst, scaleshift, ws, diffSrc, diffScaleshift, cpu.pool)
	case tensor.Float64:
		batchNormBackward[float64](src, diffDst, scaleshift, ws, diffSrc, diffScaleshift, cpu.pool)
	default:
		panic(fmt.Sprintf("batchnorm backward: unsupported dtype %s", src.DType()))
	}
}

func batchNormBackward[T tensor.Float](src, diffDst, scaleshift, ws, diffSrc, diffScaleshift *tensor.RawTensor, cfg parallel.Config) {
	srcData := tensor.Floats[T](src)
	diffDstData := tensor.Floats[T](diffDst)
	ssData := tensor.Floats[T](scaleshift)
	wsData := tensor.Floats[T](ws)
	diffSrcData := tensor.Floats[T](diffSrc)

	var diffSSData []T
	if diffScaleshift != nil {
		diffSSData = tensor.Floats[T](diffScaleshift)
	}

	shape := src.Shape()
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	nhw := T(n * h * w)

	parallel.For(c, func(ch int) {
		mean := wsData[ws.Offset(0, ch)]
		invstd := wsData[ws.Offset(1, ch)]
		scale := ssData[scaleshift.Offset(0, ch)]

		var diffGamma, diffBeta T
		for in := 0; in < n; in++ {
			for ih := 0; ih < h; ih++ {
				for iw := 0; iw < w; iw++ {
					dd := diffDstData[diffDst.Offset(in, ch, ih, iw)]
					diffGamma += (srcData[src.Offset(in, ch, ih, iw)] - mean) * dd
					diffBeta += dd
				}
			}
		}
		diffGamma *= invstd

		if diffSSData != nil {
			diffSSData[diffScaleshift.Offset(0, ch)] = diffGamma
			diffSSData[diffScaleshift.Offset(1, ch)] = diffBeta
		}

		for in := 0; in < n; in++ {
			for ih := 0; ih < h; ih++ {
				for iw := 0; iw < w; iw++ {
					dd := diffDstData[diffDst.Offset(in, ch, ih, iw)]
					x := srcData[src.Offset(in, ch, ih, iw)]
					g := dd - diffBeta/nhw - (x-mean)*diffGamma*invstd/nhw
					diffSrcData[diffSrc.Offset(in, ch, ih, iw)] = scale * invstd * g
				}
			}
		}
	}, cfg)
}
