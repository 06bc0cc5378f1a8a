package pixmap

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/pixel"
)

// Typed is a Pixmap whose channel type is fixed at compile time, giving
// direct access to individual channel values.
type Typed[T pixel.Channel] struct {
	*Pixmap
}

// NewTyped creates a zeroed pixmap of model m with channels of type T.
func NewTyped[T pixel.Channel](m *pixel.Model, width, height int, opts ...Option) (*Typed[T], error) {
	p, err := New(m, pixel.ChannelTypeOf[T](), width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Typed[T]{Pixmap: p}, nil
}

// AsTyped views p as a Typed[T]. The view shares p's data.
// Returns ErrLayoutMismatch if p's channel type is not T.
func AsTyped[T pixel.Channel](p *Pixmap) (*Typed[T], error) {
	if want := pixel.ChannelTypeOf[T](); p.layout.Channel != want {
		return nil, fmt.Errorf("%w: %s pixmap viewed as %s", ErrLayoutMismatch, p.layout, want)
	}
	return &Typed[T]{Pixmap: p}, nil
}

// channelOffset returns the byte offset of channel i of pixel (x, y), or -1.
func (t *Typed[T]) channelOffset(x, y, i int) int {
	off := t.PixelOffset(x, y)
	if off < 0 || i < 0 || i >= t.layout.ChannelCount {
		return -1
	}
	return off + i*t.layout.ChannelSize
}

// Channel returns channel i of pixel (x, y).
// Panics if the coordinates or the channel index are out of range.
func (t *Typed[T]) Channel(x, y, i int) T {
	off := t.channelOffset(x, y, i)
	if off < 0 {
		panic(fmt.Sprintf("pixmap: channel %d of (%d, %d) out of range for %s %dx%d",
			i, x, y, t.layout, t.width, t.height))
	}
	var v T
	copy(valueBytes(&v), t.data[off:])
	return v
}

// SetChannel sets channel i of pixel (x, y) to v.
// Panics if the coordinates or the channel index are out of range.
func (t *Typed[T]) SetChannel(x, y, i int, v T) {
	off := t.channelOffset(x, y, i)
	if off < 0 {
		panic(fmt.Sprintf("pixmap: channel %d of (%d, %d) out of range for %s %dx%d",
			i, x, y, t.layout, t.width, t.height))
	}
	copy(t.data[off:], valueBytes(&v))
}

// AppendRow appends the channel values of row y, in pixel then channel
// order, to dst and returns the extended slice.
// Returns dst unchanged if y is out of bounds.
func (t *Typed[T]) AppendRow(dst []T, y int) []T {
	row := t.Row(y)
	for off := 0; off < len(row); off += t.layout.ChannelSize {
		var v T
		copy(valueBytes(&v), row[off:])
		dst = append(dst, v)
	}
	return dst
}

// RowChannels returns a copy of the channel values of row y.
// Returns nil if y is out of bounds.
func (t *Typed[T]) RowChannels(y int) []T {
	if y < 0 || y >= t.height {
		return nil
	}
	return t.AppendRow(make([]T, 0, t.width*t.layout.ChannelCount), y)
}

// SubImage returns a typed view into a rectangular region of the pixmap.
// Returns nil if the bounds are invalid.
func (t *Typed[T]) SubImage(x, y, width, height int) *Typed[T] {
	sub := t.Pixmap.SubImage(x, y, width, height)
	if sub == nil {
		return nil
	}
	return &Typed[T]{Pixmap: sub}
}

// valueBytes returns the in-memory bytes of *v. Channel values are copied
// through it rather than reinterpreting pixel data in place, since rows with
// an arbitrary stride are not aligned for T.
func valueBytes[T pixel.Channel](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
