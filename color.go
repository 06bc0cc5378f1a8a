package pixel

import "strconv"

// Color is implemented by color values whose channels are of type T.
//
// Channel returns channel i in the canonical order declared by Model.
// Implementations panic if i is outside [0, Model().ChannelCount()).
// Model must not depend on the receiver's value, so that the zero value of
// a color type reports the same model as any other value.
type Color[T Channel] interface {
	Model() *Model
	Channel(i int) T
}

// ColorPtr is the pointer form of a color type C, able to assign channels.
// It is used by conversions that construct color values.
type ColorPtr[C any, T Channel] interface {
	*C
	Color[T]
	SetChannel(i int, v T)
}

// packedColor is implemented by the built-in color types. Their fields are
// exactly their channels in canonical order, so a value is laid out like an
// [n]T array. packedModel is called on nil pointers.
type packedColor interface {
	packedModel() *Model
}

func badChannel(m *Model, i int) string {
	return "pixel: channel index " + strconv.Itoa(i) + " out of range for " + m.String()
}

// Gray is a single-channel luma color.
type Gray[T Channel] struct {
	Y T
}

func (Gray[T]) Model() *Model { return GrayModel }

func (*Gray[T]) packedModel() *Model { return GrayModel }

func (c Gray[T]) Channel(i int) T {
	if i != 0 {
		panic(badChannel(GrayModel, i))
	}
	return c.Y
}

func (c *Gray[T]) SetChannel(i int, v T) {
	if i != 0 {
		panic(badChannel(GrayModel, i))
	}
	c.Y = v
}

// GrayAlpha is luma with alpha.
type GrayAlpha[T Channel] struct {
	Y, A T
}

func (GrayAlpha[T]) Model() *Model { return GrayAlphaModel }

func (*GrayAlpha[T]) packedModel() *Model { return GrayAlphaModel }

func (c GrayAlpha[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.Y
	case 1:
		return c.A
	}
	panic(badChannel(GrayAlphaModel, i))
}

func (c *GrayAlpha[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.Y = v
	case 1:
		c.A = v
	default:
		panic(badChannel(GrayAlphaModel, i))
	}
}

// RGB is a three-channel color stored red first.
type RGB[T Channel] struct {
	R, G, B T
}

func (RGB[T]) Model() *Model { return RGBModel }

func (*RGB[T]) packedModel() *Model { return RGBModel }

func (c RGB[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	panic(badChannel(RGBModel, i))
}

func (c *RGB[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		panic(badChannel(RGBModel, i))
	}
}

// BGR is a three-channel color stored blue first.
type BGR[T Channel] struct {
	B, G, R T
}

func (BGR[T]) Model() *Model { return BGRModel }

func (*BGR[T]) packedModel() *Model { return BGRModel }

func (c BGR[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.B
	case 1:
		return c.G
	case 2:
		return c.R
	}
	panic(badChannel(BGRModel, i))
}

func (c *BGR[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.B = v
	case 1:
		c.G = v
	case 2:
		c.R = v
	default:
		panic(badChannel(BGRModel, i))
	}
}

// RGBA is red, green, blue and alpha, in that order.
// Alpha is not premultiplied or otherwise interpreted.
type RGBA[T Channel] struct {
	R, G, B, A T
}

func (RGBA[T]) Model() *Model { return RGBAModel }

func (*RGBA[T]) packedModel() *Model { return RGBAModel }

func (c RGBA[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	panic(badChannel(RGBAModel, i))
}

func (c *RGBA[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		panic(badChannel(RGBAModel, i))
	}
}

// BGRA is blue, green, red and alpha, in that order.
type BGRA[T Channel] struct {
	B, G, R, A T
}

func (BGRA[T]) Model() *Model { return BGRAModel }

func (*BGRA[T]) packedModel() *Model { return BGRAModel }

func (c BGRA[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.B
	case 1:
		return c.G
	case 2:
		return c.R
	case 3:
		return c.A
	}
	panic(badChannel(BGRAModel, i))
}

func (c *BGRA[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.B = v
	case 1:
		c.G = v
	case 2:
		c.R = v
	case 3:
		c.A = v
	default:
		panic(badChannel(BGRAModel, i))
	}
}

// ARGB is alpha, red, green and blue, in that order.
type ARGB[T Channel] struct {
	A, R, G, B T
}

func (ARGB[T]) Model() *Model { return ARGBModel }

func (*ARGB[T]) packedModel() *Model { return ARGBModel }

func (c ARGB[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.A
	case 1:
		return c.R
	case 2:
		return c.G
	case 3:
		return c.B
	}
	panic(badChannel(ARGBModel, i))
}

func (c *ARGB[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.A = v
	case 1:
		c.R = v
	case 2:
		c.G = v
	case 3:
		c.B = v
	default:
		panic(badChannel(ARGBModel, i))
	}
}

// CMYK is cyan, magenta, yellow and key, in that order.
type CMYK[T Channel] struct {
	C, M, Y, K T
}

func (CMYK[T]) Model() *Model { return CMYKModel }

func (*CMYK[T]) packedModel() *Model { return CMYKModel }

func (c CMYK[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.C
	case 1:
		return c.M
	case 2:
		return c.Y
	case 3:
		return c.K
	}
	panic(badChannel(CMYKModel, i))
}

func (c *CMYK[T]) SetChannel(i int, v T) {
	switch i {
	case 0:
		c.C = v
	case 1:
		c.M = v
	case 2:
		c.Y = v
	case 3:
		c.K = v
	default:
		panic(badChannel(CMYKModel, i))
	}
}
