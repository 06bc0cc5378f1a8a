package pixel

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// ColorToMemory writes c into dst as a packed array of U channels in
// canonical order and returns the number of bytes written (Layout.Size for
// the pair (c.Model(), U)). Channels are converted from T to U with
// ConvertChannel and stored in host byte order.
//
// dst must hold at least Layout.Size bytes. This is not validated: a shorter
// buffer panics with a runtime bounds error, like any out-of-range slice
// access. Only dst[:Size] is written.
func ColorToMemory[U, T Channel, C Color[T]](r *Registry, c C, dst []byte) (int, error) {
	l, err := r.Layout(c.Model(), ChannelTypeOf[U]())
	if err != nil {
		return 0, err
	}

	var buf [MaxChannels]U
	arr := AppendArray[U, T](buf[:0], c)
	copy(dst[:l.Size], channelBytes(arr))
	return l.Size, nil
}

// MemoryToColor reads a color of type C from src, which holds a packed
// array of U channels in canonical order and host byte order. Channels are
// converted from U to T with ConvertChannel.
//
// src must hold at least Layout.Size bytes for the pair (C's model, U);
// a shorter buffer panics with a runtime bounds error. Like FromArray, it
// does not allocate for the built-in color types.
//
//	c, err := pixel.MemoryToColor[pixel.RGBA[float32], float32, uint8](r, buf)
func MemoryToColor[C any, T, U Channel, PC ColorPtr[C, T]](r *Registry, src []byte) (C, error) {
	l, err := r.Layout(ModelOf[C, T, PC](), ChannelTypeOf[U]())
	if err != nil {
		var zero C
		return zero, err
	}

	var buf [MaxChannels]U
	arr := buf[:l.ChannelCount]
	copy(channelBytes(arr), src[:l.Size])
	return FromArray[C, T, PC](arr)
}

// Store writes c into dst using its own channel type. It is ColorToMemory
// without channel conversion.
func Store[T Channel, C Color[T]](r *Registry, c C, dst []byte) (int, error) {
	return ColorToMemory[T, T](r, c, dst)
}

// Load reads a color of type C from src, which holds channels of C's own
// channel type. It is MemoryToColor without channel conversion.
func Load[C any, T Channel, PC ColorPtr[C, T]](r *Registry, src []byte) (C, error) {
	return MemoryToColor[C, T, T, PC](r, src)
}

// HostByteOrder returns the byte order of channel values written by
// ColorToMemory and Store.
func HostByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// channelBytes reinterprets the backing array of s as bytes.
// The result aliases s.
func channelBytes[T Channel](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
