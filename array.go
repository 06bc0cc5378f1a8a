package pixel

import (
	"fmt"
	"unsafe"
)

// ToArray returns the channels of c in canonical order, converted to U with
// ConvertChannel.
//
// T is the channel type of C and must be given explicitly along with U:
//
//	a := pixel.ToArray[float32, uint8](pixel.RGB[uint8]{R: 255})
func ToArray[U, T Channel, C Color[T]](c C) []U {
	return AppendArray[U, T](make([]U, 0, c.Model().ChannelCount()), c)
}

// AppendArray appends the channels of c in canonical order, converted to U,
// to dst and returns the extended slice. It does not allocate when dst has
// enough capacity. A color whose model is nil appends nothing.
func AppendArray[U, T Channel, C Color[T]](dst []U, c C) []U {
	src, to := ChannelTypeOf[T](), ChannelTypeOf[U]()
	n := c.Model().ChannelCount()
	for i := range n {
		dst = append(dst, convertChannel[U](src, to, c.Channel(i)))
	}
	return dst
}

// FromArray builds a color value of type C from channels in canonical order,
// converting each element from U to T with ConvertChannel.
//
// Returns ErrUnsupportedColorModel if C's model is nil or declares no
// channels, and ErrChannelCountMismatch if len(src) differs from the
// channel count of C's model.
//
// The built-in color types are filled in place without allocating. Other
// color types are filled through SetChannel.
//
//	c, err := pixel.FromArray[pixel.RGBA[uint16], uint16]([]float64{1, 2, 3, 4})
func FromArray[C any, T Channel, PC ColorPtr[C, T], U Channel](src []U) (C, error) {
	var zero C
	m := ModelOf[C, T, PC]()
	n := m.ChannelCount()
	if n == 0 {
		return zero, fmt.Errorf("%w: %s declares no channels", ErrUnsupportedColorModel, m.Name())
	}
	if len(src) != n {
		return zero, fmt.Errorf("%w: %s needs %d channels, got %d",
			ErrChannelCountMismatch, m.Name(), n, len(src))
	}

	from, to := ChannelTypeOf[U](), ChannelTypeOf[T]()
	if _, ok := any((*C)(nil)).(packedColor); ok {
		var c C
		dst := unsafe.Slice((*T)(unsafe.Pointer(&c)), len(src))
		for i, v := range src {
			dst[i] = convertChannel[T](from, to, v)
		}
		return c, nil
	}

	// Calling SetChannel through PC moves c to the heap.
	var c C
	p := PC(&c)
	for i, v := range src {
		p.SetChannel(i, convertChannel[T](from, to, v))
	}
	return c, nil
}

// ModelOf returns the color model of color type C.
//
//	m := pixel.ModelOf[pixel.BGRA[uint8], uint8]() // pixel.BGRAModel
func ModelOf[C any, T Channel, PC ColorPtr[C, T]]() *Model {
	if p, ok := any((*C)(nil)).(packedColor); ok {
		return p.packedModel()
	}
	var c C
	return PC(&c).Model()
}

// ConvertColor converts a color value to another color type, changing the
// channel type with ConvertChannel.
//
// When both types share a model, channels are copied by position. Otherwise
// each destination channel is taken from the source channel of the same name,
// so RGBA converts to BGRA or RGB by reordering and dropping channels. No
// channel values are computed.
//
// Returns ErrUnsupportedColorModel if a destination channel has no source
// channel of the same name.
//
//	bgra, err := pixel.ConvertColor[pixel.BGRA[float32], float32, uint8](rgba)
func ConvertColor[D any, U, T Channel, PD ColorPtr[D, U], C Color[T]](c C) (D, error) {
	var d D
	p := PD(&d)
	src, dst := c.Model(), p.Model()
	from, to := ChannelTypeOf[T](), ChannelTypeOf[U]()

	if src == dst {
		for i := range dst.ChannelCount() {
			p.SetChannel(i, convertChannel[U](from, to, c.Channel(i)))
		}
		return d, nil
	}

	for i := range dst.ChannelCount() {
		j := src.ChannelIndex(dst.ChannelName(i))
		if j < 0 {
			return d, fmt.Errorf("%w: %s has no channel %q required by %s",
				ErrUnsupportedColorModel, src.Name(), dst.ChannelName(i), dst.Name())
		}
		p.SetChannel(i, convertChannel[U](from, to, c.Channel(j)))
	}
	return d, nil
}
