package tensor

import (
	"testing"
)

func TestRawTensorAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Float32, CPU)
	data := raw.AsFloat32()

	if len(data) != 6 {
		t.Errorf("AsFloat32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorAsFloat64(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)
	data := raw.AsFloat64()

	if len(data) != 4 {
		t.Errorf("AsFloat64 length = %d, want 4", len(data))
	}

	data[3] = 1.5
	if raw.AsFloat64()[3] != 1.5 {
		t.Error("AsFloat64 should return zero-copy slice")
	}
}

func TestRawTensorDTypeMismatchPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)

	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on a float32 tensor should panic")
		}
	}()
	raw.AsFloat64()
}

func TestRawTensorOffsetRowMajor(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 4, 5}, Float32, CPU)

	// Row-major NCHW: offset = n*60 + c*20 + h*5 + w
	if got := raw.Offset(0, 0, 0, 0); got != 0 {
		t.Errorf("Offset(0,0,0,0) = %d, want 0", got)
	}
	if got := raw.Offset(1, 2, 3, 4); got != 1*60+2*20+3*5+4 {
		t.Errorf("Offset(1,2,3,4) = %d, want %d", got, 1*60+2*20+3*5+4)
	}
}

func TestRawTensorOffsetStrided(t *testing.T) {
	shape := Shape{2, 3, 4, 5}
	raw, err := NewRawStrided(shape, shape.ChannelsLastStrides(), Float32, CPU)
	if err != nil {
		t.Fatalf("NewRawStrided: %v", err)
	}

	// Channel-innermost: offset = n*60 + h*15 + w*3 + c
	if got := raw.Offset(1, 2, 3, 4); got != 1*60+3*15+4*3+2 {
		t.Errorf("Offset(1,2,3,4) = %d, want %d", got, 1*60+3*15+4*3+2)
	}

	// The buffer must cover every addressable offset.
	data := raw.AsFloat32()
	maxOff := raw.Offset(1, 2, 3, 4)
	if len(data) <= maxOff {
		t.Errorf("buffer length %d does not cover max offset %d", len(data), maxOff)
	}
}

func TestRawTensorOffsetWrongArity(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)

	defer func() {
		if recover() == nil {
			t.Error("Offset with wrong index count should panic")
		}
	}()
	raw.Offset(1, 2, 3)
}

func TestNewRawStridedRejectsBadStrides(t *testing.T) {
	if _, err := NewRawStrided(Shape{2, 3}, []int{3}, Float32, CPU); err == nil {
		t.Error("NewRawStrided should reject rank mismatch")
	}
	if _, err := NewRawStrided(Shape{2, 3}, []int{-3, 1}, Float32, CPU); err == nil {
		t.Error("NewRawStrided should reject negative strides")
	}
}

func TestNewRawRejectsInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{0, 3}, Float32, CPU); err == nil {
		t.Error("NewRaw should reject a zero dimension")
	}
}

func TestFloats(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float64, CPU)
	data := Floats[float64](raw)
	data[2] = 3.25

	if raw.AsFloat64()[2] != 3.25 {
		t.Error("Floats should return zero-copy slice")
	}
}

func TestRawTensorClone(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	raw.AsFloat32()[0] = 1

	clone := raw.Clone()
	clone.AsFloat32()[0] = 9

	if raw.AsFloat32()[0] != 1 {
		t.Error("Clone should deep-copy the buffer")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Error("Clone should preserve shape")
	}
}

func TestDataTypeOf(t *testing.T) {
	if DataTypeOf[float32]() != Float32 {
		t.Error("DataTypeOf[float32] != Float32")
	}
	if DataTypeOf[float64]() != Float64 {
		t.Error("DataTypeOf[float64] != Float64")
	}
}
