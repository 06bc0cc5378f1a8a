package pixmap

import (
	"fmt"

	"github.com/gogpu/pixel"
)

// Shapes registered by RegisterShapes.
const (
	// ShapePixmap creates an empty *Pixmap bound to a layout.
	ShapePixmap pixel.Shape = "pixmap"

	// ShapeTyped creates an empty *Typed[T], with T the Go type of the
	// requested channel type.
	ShapeTyped pixel.Shape = "pixmap.typed"
)

// RegisterShapes registers ShapePixmap and ShapeTyped with cs, so that
// pixmaps can be created for a model and channel type chosen at runtime:
//
//	v, err := cs.New(pixmap.ShapeTyped, pixel.RGBAModel, pixel.ChannelFloat32)
//	tp := v.(*pixmap.Typed[float32])
//	err = tp.Reset(640, 480)
//
// Created pixmaps are empty; call Reset to allocate them. opts select the
// registry used to resolve layouts; WithStride is ignored.
func RegisterShapes(cs *pixel.Constructors, opts ...Option) error {
	reg := buildOptions(opts).registry

	if err := cs.Register(ShapePixmap, func(m *pixel.Model, t pixel.ChannelType) (pixel.Factory, error) {
		l, err := reg.Layout(m, t)
		if err != nil {
			return nil, err
		}
		return func() any { return &Pixmap{layout: l, reg: reg} }, nil
	}); err != nil {
		return err
	}

	return cs.Register(ShapeTyped, func(m *pixel.Model, t pixel.ChannelType) (pixel.Factory, error) {
		l, err := reg.Layout(m, t)
		if err != nil {
			return nil, err
		}
		switch t {
		case pixel.ChannelUint8:
			return typedFactory[uint8](l, reg), nil
		case pixel.ChannelUint16:
			return typedFactory[uint16](l, reg), nil
		case pixel.ChannelUint32:
			return typedFactory[uint32](l, reg), nil
		case pixel.ChannelUint64:
			return typedFactory[uint64](l, reg), nil
		case pixel.ChannelInt8:
			return typedFactory[int8](l, reg), nil
		case pixel.ChannelInt16:
			return typedFactory[int16](l, reg), nil
		case pixel.ChannelInt32:
			return typedFactory[int32](l, reg), nil
		case pixel.ChannelInt64:
			return typedFactory[int64](l, reg), nil
		case pixel.ChannelFloat32:
			return typedFactory[float32](l, reg), nil
		case pixel.ChannelFloat64:
			return typedFactory[float64](l, reg), nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, l)
		}
	})
}

func typedFactory[T pixel.Channel](l pixel.Layout, reg *pixel.Registry) pixel.Factory {
	return func() any {
		return &Typed[T]{Pixmap: &Pixmap{layout: l, reg: reg}}
	}
}
