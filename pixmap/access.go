package pixmap

import (
	"fmt"

	"github.com/gogpu/pixel"
)

// Set writes color c at (x, y), converting its channels from T to the
// pixmap's channel type. c must use the pixmap's color model.
//
// Returns ErrOutOfBounds for coordinates outside the pixmap and
// ErrLayoutMismatch for a color of another model.
//
//	err := pixmap.Set[uint8](p, 3, 4, pixel.RGBA[uint8]{R: 255, A: 255})
func Set[T pixel.Channel, C pixel.Color[T]](p *Pixmap, x, y int, c C) error {
	off := p.PixelOffset(x, y)
	if off < 0 {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return encode[T](p, c, p.data[off:off+p.layout.Size])
}

// At reads the color at (x, y) as a value of type C, converting channels
// from the pixmap's channel type to T. C must use the pixmap's color model.
//
//	c, err := pixmap.At[pixel.RGBA[float32], float32](p, 3, 4)
func At[C any, T pixel.Channel, PC pixel.ColorPtr[C, T]](p *Pixmap, x, y int) (C, error) {
	off := p.PixelOffset(x, y)
	if off < 0 {
		var zero C
		return zero, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return decode[C, T, PC](p, p.data[off:off+p.layout.Size])
}

// Fill sets every pixel to c. Row padding is left untouched.
func Fill[T pixel.Channel, C pixel.Color[T]](p *Pixmap, c C) error {
	if p.IsEmpty() {
		return nil
	}

	size := p.layout.Size
	row := p.Row(0)
	if err := encode[T](p, c, row[:size]); err != nil {
		return err
	}
	// Double the filled prefix of row 0 until it covers the row.
	for n := size; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
	if p.height == 1 {
		return nil
	}

	// Replicate row 0 into the remaining rows: a zero source stride reads
	// the same row every time.
	return pixel.CopyRows(p.data[p.stride:], p.data, pixel.Rows{
		SrcStride: 0,
		DstStride: p.stride,
		RowBytes:  len(row),
		Count:     p.height - 1,
	})
}

// encode stores c in dst with the pixmap's channel type.
func encode[T pixel.Channel, C pixel.Color[T]](p *Pixmap, c C, dst []byte) error {
	if c.Model() != p.layout.Model {
		return fmt.Errorf("%w: %s color in %s pixmap", ErrLayoutMismatch, c.Model().Name(), p.layout)
	}

	var err error
	switch p.layout.Channel {
	case pixel.ChannelUint8:
		_, err = pixel.ColorToMemory[uint8, T](p.reg, c, dst)
	case pixel.ChannelUint16:
		_, err = pixel.ColorToMemory[uint16, T](p.reg, c, dst)
	case pixel.ChannelUint32:
		_, err = pixel.ColorToMemory[uint32, T](p.reg, c, dst)
	case pixel.ChannelUint64:
		_, err = pixel.ColorToMemory[uint64, T](p.reg, c, dst)
	case pixel.ChannelInt8:
		_, err = pixel.ColorToMemory[int8, T](p.reg, c, dst)
	case pixel.ChannelInt16:
		_, err = pixel.ColorToMemory[int16, T](p.reg, c, dst)
	case pixel.ChannelInt32:
		_, err = pixel.ColorToMemory[int32, T](p.reg, c, dst)
	case pixel.ChannelInt64:
		_, err = pixel.ColorToMemory[int64, T](p.reg, c, dst)
	case pixel.ChannelFloat32:
		_, err = pixel.ColorToMemory[float32, T](p.reg, c, dst)
	case pixel.ChannelFloat64:
		_, err = pixel.ColorToMemory[float64, T](p.reg, c, dst)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedLayout, p.layout)
	}
	return err
}

// decode reads a C from src, which holds channels of the pixmap's type.
func decode[C any, T pixel.Channel, PC pixel.ColorPtr[C, T]](p *Pixmap, src []byte) (C, error) {
	var c C
	if m := pixel.ModelOf[C, T, PC](); m != p.layout.Model {
		return c, fmt.Errorf("%w: %s color from %s pixmap", ErrLayoutMismatch, m.Name(), p.layout)
	}

	switch p.layout.Channel {
	case pixel.ChannelUint8:
		return pixel.MemoryToColor[C, T, uint8, PC](p.reg, src)
	case pixel.ChannelUint16:
		return pixel.MemoryToColor[C, T, uint16, PC](p.reg, src)
	case pixel.ChannelUint32:
		return pixel.MemoryToColor[C, T, uint32, PC](p.reg, src)
	case pixel.ChannelUint64:
		return pixel.MemoryToColor[C, T, uint64, PC](p.reg, src)
	case pixel.ChannelInt8:
		return pixel.MemoryToColor[C, T, int8, PC](p.reg, src)
	case pixel.ChannelInt16:
		return pixel.MemoryToColor[C, T, int16, PC](p.reg, src)
	case pixel.ChannelInt32:
		return pixel.MemoryToColor[C, T, int32, PC](p.reg, src)
	case pixel.ChannelInt64:
		return pixel.MemoryToColor[C, T, int64, PC](p.reg, src)
	case pixel.ChannelFloat32:
		return pixel.MemoryToColor[C, T, float32, PC](p.reg, src)
	case pixel.ChannelFloat64:
		return pixel.MemoryToColor[C, T, float64, PC](p.reg, src)
	default:
		return c, fmt.Errorf("%w: %s", ErrUnsupportedLayout, p.layout)
	}
}
