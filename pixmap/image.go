package pixmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/pixel"
	xdraw "golang.org/x/image/draw"
)

// FromImage creates an RGBA/uint8 pixmap holding the non-premultiplied
// pixels of img.
//
// *image.NRGBA sources are copied row by row; any other image is first
// converted with golang.org/x/image/draw.
func FromImage(img image.Image, opts ...Option) (*Pixmap, error) {
	b := img.Bounds()
	p, err := New(pixel.RGBAModel, pixel.ChannelUint8, b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}

	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(src, src.Bounds(), img, b.Min, xdraw.Src)
	}

	off := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y)
	err = pixel.CopyRows(p.data, src.Pix[off:], pixel.Rows{
		SrcStride: src.Stride,
		DstStride: p.stride,
		RowBytes:  p.layout.RowBytes(p.width),
		Count:     p.height,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ToImage returns a copy of the pixmap as a standard library image.
//
// Supported layouts:
//   - Gray/uint8 as *image.Gray
//   - RGBA/uint8 and BGRA/uint8 as *image.NRGBA
//   - RGBA/uint16 as *image.NRGBA64
//
// Returns ErrUnsupportedLayout for any other layout.
func (p *Pixmap) ToImage() (image.Image, error) {
	rect := image.Rect(0, 0, p.width, p.height)
	l := p.layout

	switch {
	case l.Model == pixel.GrayModel && l.Channel == pixel.ChannelUint8:
		img := image.NewGray(rect)
		return img, pixel.CopyRows(img.Pix, p.data, p.rows(img.Stride))

	case l.Model == pixel.RGBAModel && l.Channel == pixel.ChannelUint8:
		img := image.NewNRGBA(rect)
		return img, pixel.CopyRows(img.Pix, p.data, p.rows(img.Stride))

	case l.Model == pixel.BGRAModel && l.Channel == pixel.ChannelUint8:
		img := image.NewNRGBA(rect)
		for y := range p.height {
			for x := range p.width {
				c, err := At[pixel.BGRA[uint8], uint8](p, x, y)
				if err != nil {
					return nil, err
				}
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			}
		}
		return img, nil

	case l.Model == pixel.RGBAModel && l.Channel == pixel.ChannelUint16:
		img := image.NewNRGBA64(rect)
		for y := range p.height {
			for x := range p.width {
				c, err := At[pixel.RGBA[uint16], uint16](p, x, y)
				if err != nil {
					return nil, err
				}
				img.SetNRGBA64(x, y, color.NRGBA64{R: c.R, G: c.G, B: c.B, A: c.A})
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("%w: %s has no image.Image equivalent", ErrUnsupportedLayout, l)
	}
}
