package tensor

import (
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 16, 28, 28}, 25088},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3, 4, 4}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	if err := (Shape{2, 0, 4}).Validate(); err == nil {
		t.Error("Validate() should reject zero dimension")
	}

	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Validate() should reject negative dimension")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4, 5}.ComputeStrides()
	want := []int{60, 20, 5, 1}

	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides()[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestShapeChannelsLastStrides(t *testing.T) {
	// Shape (N=2, C=3, H=4, W=5) stored channel-innermost.
	strides := Shape{2, 3, 4, 5}.ChannelsLastStrides()
	want := []int{60, 1, 15, 3}

	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ChannelsLastStrides()[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestShapeChannelsLastStrides_Not4D(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ChannelsLastStrides should panic for non-4D shapes")
		}
	}()
	Shape{2, 3}.ChannelsLastStrides()
}

func TestShapeEqual(t *testing.T) {
	a := Shape{2, 3, 4}
	if !a.Equal(Shape{2, 3, 4}) {
		t.Error("Equal shapes reported unequal")
	}
	if a.Equal(Shape{2, 3}) {
		t.Error("Different ranks reported equal")
	}
	if a.Equal(Shape{2, 3, 5}) {
		t.Error("Different dims reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	a := Shape{2, 3}
	b := a.Clone()
	b[0] = 7

	if a[0] != 2 {
		t.Error("Clone should not share backing array")
	}
}
