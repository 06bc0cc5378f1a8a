// Package pixmap provides a stride-aware pixel buffer built on the pixel
// marshalling core.
//
// A Pixmap owns (or borrows) a byte buffer holding width x height colors of
// one pixel.Layout, with an optional row stride for alignment or for views
// into a larger buffer. Every per-pixel access goes through pixel's memory
// converter and every bulk transfer through pixel.CopyRows.
package pixmap

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixel"
)

// Common errors for pixmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixmap: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixmap: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixmap: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside bounds.
	ErrOutOfBounds = errors.New("pixmap: coordinates out of bounds")

	// ErrLayoutMismatch is returned when a color or another pixmap does not
	// match the layout or size of the pixmap.
	ErrLayoutMismatch = errors.New("pixmap: layout mismatch")

	// ErrUnsupportedLayout is returned when an operation is not available
	// for the pixmap's layout.
	ErrUnsupportedLayout = errors.New("pixmap: unsupported layout")
)

// Pixmap is a rectangular buffer of packed colors.
//
// Rows start every Stride bytes; each row holds Width colors of Layout.Size
// bytes. Bytes between the end of a row and the next stride are padding and
// are never written by pixmap operations.
//
// Thread safety: Pixmap is safe for concurrent reads. Writes require
// external synchronization.
type Pixmap struct {
	data   []byte
	width  int
	height int
	stride int
	layout pixel.Layout
	reg    *pixel.Registry

	// borrowed is set when data belongs to a parent pixmap or the caller.
	borrowed bool
}

// Option configures a Pixmap during creation.
type Option func(*options)

type options struct {
	stride   int
	registry *pixel.Registry
}

func defaultOptions() options {
	return options{
		stride:   0, // tightly packed
		registry: nil,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = pixel.DefaultRegistry()
	}
	return o
}

// WithStride sets a custom row stride in bytes, for alignment.
// Stride must be at least Layout.RowBytes(width).
func WithStride(stride int) Option {
	return func(o *options) {
		o.stride = stride
	}
}

// WithRegistry sets the layout registry used by the pixmap.
// Without it the pixmap uses pixel.DefaultRegistry.
func WithRegistry(r *pixel.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// New creates a zeroed pixmap of model m with channels of type t.
func New(m *pixel.Model, t pixel.ChannelType, width, height int, opts ...Option) (*Pixmap, error) {
	o := buildOptions(opts)

	layout, err := o.registry.Layout(m, t)
	if err != nil {
		return nil, fmt.Errorf("pixmap: new: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := o.stride
	if stride == 0 {
		stride = layout.RowBytes(width)
	}
	if stride < layout.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	return &Pixmap{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		layout: layout,
		reg:    o.registry,
	}, nil
}

// FromRaw creates a Pixmap over existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Pixmap.
// Stride must be at least Layout.RowBytes(width); data must hold
// (height-1)*stride + Layout.RowBytes(width) bytes.
func FromRaw(data []byte, m *pixel.Model, t pixel.ChannelType, width, height, stride int, opts ...Option) (*Pixmap, error) {
	o := buildOptions(opts)

	layout, err := o.registry.Layout(m, t)
	if err != nil {
		return nil, fmt.Errorf("pixmap: from raw: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	rowBytes := layout.RowBytes(width)
	if stride < rowBytes {
		return nil, ErrInvalidStride
	}

	extent := (height-1)*stride + rowBytes
	if len(data) < extent {
		return nil, ErrDataTooSmall
	}

	return &Pixmap{
		data:     data[:extent],
		width:    width,
		height:   height,
		stride:   stride,
		layout:   layout,
		reg:      o.registry,
		borrowed: true,
	}, nil
}

// Reset reallocates the pixmap as a zeroed, tightly packed width x height
// buffer of the same layout. Views created with SubImage keep the old data.
func (p *Pixmap) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	p.stride = p.layout.RowBytes(width)
	p.width = width
	p.height = height
	p.data = make([]byte, p.stride*height)
	p.borrowed = false
	return nil
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row (including padding).
func (p *Pixmap) Stride() int {
	return p.stride
}

// Layout returns the color layout of every pixel.
func (p *Pixmap) Layout() pixel.Layout {
	return p.layout
}

// Registry returns the layout registry used for pixel conversions.
func (p *Pixmap) Registry() *pixel.Registry {
	return p.reg
}

// Bounds returns the dimensions as (width, height).
func (p *Pixmap) Bounds() (int, int) {
	return p.width, p.height
}

// Borrowed reports whether the pixmap's memory is owned elsewhere: it is a
// SubImage view or was created by FromRaw.
func (p *Pixmap) Borrowed() bool {
	return p.borrowed
}

// IsEmpty returns true if the pixmap has zero dimensions.
func (p *Pixmap) IsEmpty() bool {
	return p.width == 0 || p.height == 0
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []byte {
	return p.data
}

// TextureFormat returns the GPU texture format matching the pixel layout,
// or gputypes.TextureFormatUndefined if the data cannot be uploaded as is.
func (p *Pixmap) TextureFormat() gputypes.TextureFormat {
	return p.layout.TextureFormat()
}

// Row returns the pixel bytes of row y, without padding.
// Returns nil if y is out of bounds.
func (p *Pixmap) Row(y int) []byte {
	if y < 0 || y >= p.height {
		return nil
	}
	start := y * p.stride
	return p.data[start : start+p.layout.RowBytes(p.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (p *Pixmap) PixelOffset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return y*p.stride + x*p.layout.Size
}

// PixelBytes returns the raw bytes of pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (p *Pixmap) PixelBytes(x, y int) []byte {
	off := p.PixelOffset(x, y)
	if off < 0 {
		return nil
	}
	return p.data[off : off+p.layout.Size]
}

// rows describes a copy of every row of p.
func (p *Pixmap) rows(dstStride int) pixel.Rows {
	return pixel.Rows{
		SrcStride: p.stride,
		DstStride: dstStride,
		RowBytes:  p.layout.RowBytes(p.width),
		Count:     p.height,
	}
}

// Clone creates a tightly packed deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	rowBytes := p.layout.RowBytes(p.width)
	c := &Pixmap{
		data:   make([]byte, rowBytes*p.height),
		width:  p.width,
		height: p.height,
		stride: rowBytes,
		layout: p.layout,
		reg:    p.reg,
	}
	// Descriptor is built from valid dimensions, so CopyRows cannot fail.
	_ = pixel.CopyRows(c.data, p.data, p.rows(rowBytes))
	return c
}

// Copy copies every pixel of src into dst. The two pixmaps may have
// different strides but must share layout and dimensions.
// Returns ErrLayoutMismatch otherwise.
func Copy(dst, src *Pixmap) error {
	if dst.layout != src.layout || dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("%w: copy %s %dx%d into %s %dx%d", ErrLayoutMismatch,
			src.layout, src.width, src.height, dst.layout, dst.width, dst.height)
	}
	return pixel.CopyRows(dst.data, src.data, src.rows(dst.stride))
}

// Clear sets all pixel bytes to zero. Row padding is left untouched.
func (p *Pixmap) Clear() {
	for y := range p.height {
		clear(p.Row(y))
	}
}

// SubImage returns a view into a rectangular region of the pixmap.
// The returned Pixmap shares the underlying data with the original.
// Modifications to the sub-image affect the original and vice versa.
// Returns nil if the bounds are invalid or outside the pixmap.
func (p *Pixmap) SubImage(x, y, width, height int) *Pixmap {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > p.width || y+height > p.height {
		return nil
	}

	offset := y*p.stride + x*p.layout.Size
	// Total bytes needed: (height-1)*stride + width*size
	end := (y+height-1)*p.stride + (x+width)*p.layout.Size

	return &Pixmap{
		data:     p.data[offset:end],
		width:    width,
		height:   height,
		stride:   p.stride, // Keep original stride for proper row access
		layout:   p.layout,
		reg:      p.reg,
		borrowed: true,
	}
}
