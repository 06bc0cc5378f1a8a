package pixmap

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/pixel"
	"github.com/google/go-cmp/cmp"
)

func TestTypedChannel(t *testing.T) {
	tp, err := NewTyped[float32](pixel.RGBAModel, 3, 2, WithStride(50))
	if err != nil {
		t.Fatal(err)
	}

	tp.SetChannel(2, 1, 0, 0.25)
	tp.SetChannel(2, 1, 3, float32(math.Inf(1)))

	if got := tp.Channel(2, 1, 0); got != 0.25 {
		t.Errorf("Channel(2, 1, 0) = %v, want 0.25", got)
	}
	if got := tp.Channel(2, 1, 3); !math.IsInf(float64(got), 1) {
		t.Errorf("Channel(2, 1, 3) = %v, want +Inf", got)
	}

	// The unaligned stride is read through the same channel bytes as At.
	c, err := At[pixel.RGBA[float32], float32](tp.Pixmap, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0.25 {
		t.Errorf("At().R = %v, want 0.25", c.R)
	}
}

func TestTypedChannelPanics(t *testing.T) {
	tp, err := NewTyped[uint8](pixel.RGBModel, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		x, y, i int
	}{
		{"channel index", 0, 0, 3},
		{"negative channel", 0, 0, -1},
		{"x out of range", 2, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Channel() did not panic")
				}
			}()
			_ = tp.Channel(tc.x, tc.y, tc.i)
		})
	}
}

func TestTypedRowChannels(t *testing.T) {
	tp, err := NewTyped[int16](pixel.GrayAlphaModel, 2, 2, WithStride(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := Set[int16](tp.Pixmap, 0, 1, pixel.GrayAlpha[int16]{Y: -5, A: 7}); err != nil {
		t.Fatal(err)
	}
	if err := Set[int16](tp.Pixmap, 1, 1, pixel.GrayAlpha[int16]{Y: 300, A: -1}); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]int16{-5, 7, 300, -1}, tp.RowChannels(1)); diff != "" {
		t.Errorf("RowChannels(1) mismatch (-want +got):\n%s", diff)
	}
	if tp.RowChannels(2) != nil {
		t.Error("RowChannels(2) should be nil")
	}

	buf := tp.AppendRow([]int16{42}, 0)
	if diff := cmp.Diff([]int16{42, 0, 0, 0, 0}, buf); diff != "" {
		t.Errorf("AppendRow() mismatch (-want +got):\n%s", diff)
	}
}

func TestAsTyped(t *testing.T) {
	p, err := New(pixel.CMYKModel, pixel.ChannelUint16, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	tp, err := AsTyped[uint16](p)
	if err != nil {
		t.Fatalf("AsTyped() error = %v", err)
	}
	tp.SetChannel(1, 1, 3, 0xBEEF)

	got, err := At[pixel.CMYK[uint16], uint16](p, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.K != 0xBEEF {
		t.Errorf("K = %#x, want 0xBEEF (shared data)", got.K)
	}

	if _, err := AsTyped[uint8](p); !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("AsTyped[uint8]() error = %v, want ErrLayoutMismatch", err)
	}
}

func TestTypedSubImage(t *testing.T) {
	tp, err := NewTyped[uint32](pixel.GrayModel, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	sub := tp.SubImage(1, 1, 2, 2)
	if sub == nil {
		t.Fatal("SubImage() = nil")
	}
	sub.SetChannel(1, 1, 0, 77)
	if got := tp.Channel(2, 2, 0); got != 77 {
		t.Errorf("parent Channel(2, 2, 0) = %d, want 77", got)
	}
	if tp.SubImage(3, 3, 2, 2) != nil {
		t.Error("SubImage() outside bounds should be nil")
	}
}
