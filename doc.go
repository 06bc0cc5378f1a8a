// Package pixel moves typed color values to and from raw pixel memory.
//
// # Overview
//
// pixel is the marshalling core used by image containers in the GoGPU
// ecosystem. It converts strongly-typed, multi-channel color values into
// packed byte buffers and back, independent of the color model and of the
// channel numeric type, and it copies whole image rows between buffers with
// different row pitches. It does no color-space math: a channel value is
// moved and numerically converted, never interpreted.
//
// # Quick Start
//
//	r := pixel.NewRegistry()
//
//	// Pack an 8-bit RGBA color as four float32 channels.
//	buf := make([]byte, 16)
//	n, err := pixel.ColorToMemory[float32, uint8](r, pixel.RGBA[uint8]{R: 255, A: 255}, buf)
//
//	// Read it back as 16-bit channels.
//	c, err := pixel.MemoryToColor[pixel.RGBA[uint16], uint16, float32](r, buf)
//
//	// Copy 3 rows of 4 bytes from a stride-8 buffer into a packed one.
//	err = pixel.CopyRows(dst, src, pixel.Rows{SrcStride: 8, DstStride: 4, RowBytes: 4, Count: 3})
//
// # Architecture
//
// The package is organized into:
//   - Channel types: the Channel constraint and its runtime tag ChannelType
//   - Color models: Model declares channel names in canonical order;
//     Gray, GrayAlpha, RGB, BGR, RGBA, BGRA, ARGB and CMYK are built in
//   - Layouts: Registry caches Layout metadata per (Model, ChannelType)
//   - Conversions: ToArray/FromArray (channel arrays) and
//     ColorToMemory/MemoryToColor (raw memory)
//   - Row copy: CopyRows with a Rows descriptor
//   - Constructors: a cache of factories for containers whose color model
//     and channel type are selected at runtime
//
// Color types describe their channels explicitly through the Color and
// ColorPtr interfaces; there is no reflection.
//
// # Channel Conversion
//
// Converting between channel types saturates. See ConvertChannel for the
// exact rule.
//
// # Memory Contract
//
// Buffers are owned by the caller. The core checks descriptor arguments but
// never buffer capacity: passing a buffer shorter than an operation requires
// panics with a runtime bounds error. Containers validate sizes once when
// they allocate, not per pixel.
//
// # Thread Safety
//
// Registry and Constructors are safe for concurrent use. Conversions and
// row copies take no locks; the caller must ensure no other goroutine
// mutates the same memory during a call.
package pixel
