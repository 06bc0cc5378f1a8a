package pixel

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorToMemory_Layout(t *testing.T) {
	r := NewRegistry()
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xEE
	}

	n, err := Store[uint8](r, BGRA[uint8]{B: 1, G: 2, R: 3, A: 4}, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("Store wrote %d bytes, want 4", n)
	}
	want := []byte{1, 2, 3, 4, 0xEE, 0xEE, 0xEE, 0xEE}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
}

func TestColorToMemory_HostByteOrder(t *testing.T) {
	r := NewRegistry()
	buf := make([]byte, 6)
	n, err := ColorToMemory[uint16, uint16](r, RGB[uint16]{R: 0x0102, G: 0x0304, B: 0xA0B0}, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("wrote %d bytes, want 6", n)
	}

	order := HostByteOrder()
	got := []uint16{order.Uint16(buf[0:]), order.Uint16(buf[2:]), order.Uint16(buf[4:])}
	if diff := cmp.Diff([]uint16{0x0102, 0x0304, 0xA0B0}, got); diff != "" {
		t.Errorf("decoded channels mismatch (-want +got):\n%s", diff)
	}
}

func TestColorToMemory_ConvertsChannels(t *testing.T) {
	r := NewRegistry()
	buf := make([]byte, 16)
	n, err := ColorToMemory[float32, uint8](r, RGBA[uint8]{R: 255, G: 128, B: 0, A: 1}, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Fatalf("wrote %d bytes, want 16", n)
	}

	order := HostByteOrder()
	for i, want := range []float32{255, 128, 0, 1} {
		got := math.Float32frombits(order.Uint32(buf[i*4:]))
		if got != want {
			t.Errorf("channel %d = %v, want %v", i, got, want)
		}
	}
}

func TestMemoryToColor(t *testing.T) {
	r := NewRegistry()
	src := make([]byte, 8)
	order := HostByteOrder()
	order.PutUint16(src[0:], 10)
	order.PutUint16(src[2:], 20)
	order.PutUint16(src[4:], 30)
	order.PutUint16(src[6:], 1000)

	got, err := MemoryToColor[CMYK[uint8], uint8, uint16](r, src)
	if err != nil {
		t.Fatal(err)
	}
	want := CMYK[uint8]{C: 10, M: 20, Y: 30, K: 255}
	if got != want {
		t.Errorf("MemoryToColor = %+v, want %+v", got, want)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	r := NewRegistry()

	t.Run("uint8 exhaustive", func(t *testing.T) {
		buf := make([]byte, 16)
		for v := range 256 {
			b := uint8(v)
			c := RGBA[uint8]{R: b, G: ^b, B: b >> 1, A: b ^ 0xA5}
			if _, err := ColorToMemory[float32, uint8](r, c, buf); err != nil {
				t.Fatal(err)
			}
			got, err := MemoryToColor[RGBA[uint8], uint8, float32](r, buf)
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Fatalf("round trip = %+v, want %+v", got, c)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		c := GrayAlpha[float64]{Y: math.Pi, A: -math.SmallestNonzeroFloat64}
		buf := make([]byte, 64) // larger than needed
		if _, err := Store[float64](r, c, buf); err != nil {
			t.Fatal(err)
		}
		got, err := Load[GrayAlpha[float64], float64](r, buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("round trip = %+v, want %+v", got, c)
		}
	})

	t.Run("int64 extremes", func(t *testing.T) {
		c := ARGB[int64]{A: math.MinInt64, R: math.MaxInt64, G: 0, B: -1}
		buf := make([]byte, 32)
		if _, err := Store[int64](r, c, buf); err != nil {
			t.Fatal(err)
		}
		got, err := Load[ARGB[int64], int64](r, buf)
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("round trip = %+v, want %+v", got, c)
		}
	})
}

func TestMemory_NoAlloc(t *testing.T) {
	r := NewRegistry()
	buf := make([]byte, 32)
	rgba := RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}
	cmyk := CMYK[float64]{C: 0.5, K: 1}
	src := []uint8{1, 2, 3}

	// Warm the layout cache; allocation happens only on first lookup.
	_, _ = ColorToMemory[float32, uint8](r, rgba, buf)
	_, _ = Store[float64](r, cmyk, buf)

	tests := []struct {
		name string
		fn   func()
	}{
		{"ColorToMemory", func() { _, _ = ColorToMemory[float32, uint8](r, rgba, buf) }},
		{"MemoryToColor", func() { _, _ = MemoryToColor[RGBA[uint8], uint8, float32](r, buf) }},
		{"Store", func() { _, _ = Store[float64](r, cmyk, buf) }},
		{"Load", func() { _, _ = Load[CMYK[float64], float64](r, buf) }},
		{"FromArray", func() { _, _ = FromArray[BGR[int16], int16](src) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if allocs := testing.AllocsPerRun(100, tt.fn); allocs != 0 {
				t.Errorf("%s allocs = %v, want 0", tt.name, allocs)
			}
		})
	}
}

func TestMemory_UnsupportedModel(t *testing.T) {
	r := NewRegistry()
	_, err := Store[uint8](r, emptyColor{}, nil)
	if !errors.Is(err, ErrUnsupportedColorModel) {
		t.Errorf("Store error = %v, want ErrUnsupportedColorModel", err)
	}
	_, err = Load[emptyColor, uint8](r, nil)
	if !errors.Is(err, ErrUnsupportedColorModel) {
		t.Errorf("Load error = %v, want ErrUnsupportedColorModel", err)
	}
}

func TestMemory_ShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a buffer shorter than the layout")
		}
	}()
	_, _ = Store[uint8](NewRegistry(), RGBA[uint8]{}, make([]byte, 3))
}

func TestHostByteOrder(t *testing.T) {
	var native uint16 = 0x0102
	b := channelBytes([]uint16{native})
	got := HostByteOrder().Uint16(b)
	if got != native {
		t.Errorf("HostByteOrder decodes native bytes as %#x, want %#x", got, native)
	}
	if order := HostByteOrder(); order != binary.LittleEndian && order != binary.BigEndian {
		t.Errorf("unexpected byte order %v", order)
	}
}

// emptyColor is a color type whose model declares no channels.
type emptyColor struct{}

var emptyModel = NewModel("Empty")

func (emptyColor) Model() *Model          { return emptyModel }
func (emptyColor) Channel(i int) uint8    { panic(badChannel(emptyModel, i)) }
func (*emptyColor) SetChannel(int, uint8) { panic("unreachable") }

// nilModelColor is a color type that reports no model at all.
type nilModelColor struct{}

func (nilModelColor) Model() *Model          { return nil }
func (nilModelColor) Channel(i int) uint8    { panic(badChannel(nil, i)) }
func (*nilModelColor) SetChannel(int, uint8) { panic("unreachable") }

func BenchmarkColorToMemory(b *testing.B) {
	r := NewRegistry()
	buf := make([]byte, 16)
	c := RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = ColorToMemory[float32, uint8](r, c, buf)
	}
}

func BenchmarkMemoryToColor(b *testing.B) {
	r := NewRegistry()
	buf := make([]byte, 4)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Load[RGBA[uint8], uint8](r, buf)
	}
}
