package pixel

import "math"

// ConvertChannel converts a single channel value from T to U.
//
// The conversion is numeric, never a reinterpretation of bits, and it
// saturates:
//   - float to integer: NaN becomes 0, the value is truncated toward zero
//     and then clamped to the range of U.
//   - integer to integer: the value is clamped to the range of U
//     (negative values become 0 for unsigned U).
//   - integer to float: the nearest representable value.
//   - float64 to float32: finite values are clamped to ±MaxFloat32;
//     infinities and NaN are preserved.
//
// Converting a type to itself is the identity.
func ConvertChannel[U, T Channel](v T) U {
	return convertChannel[U](ChannelTypeOf[T](), ChannelTypeOf[U](), v)
}

// convertChannel converts v, whose type is tagged src, to U, tagged dst.
// Callers converting many channels resolve the tags once.
func convertChannel[U, T Channel](src, dst ChannelType, v T) U {
	if src == dst {
		return U(v)
	}
	switch src.info().kind {
	case kindFloat:
		return fromFloat[U](dst, float64(v))
	case kindSigned:
		return fromInt[U](dst, int64(v))
	default:
		return fromUint[U](dst, uint64(v))
	}
}

func fromFloat[U Channel](dst ChannelType, f float64) U {
	info := dst.info()
	switch info.kind {
	case kindFloat:
		if dst == ChannelFloat32 {
			switch {
			case f > math.MaxFloat32 && !math.IsInf(f, 1):
				f = math.MaxFloat32
			case f < -math.MaxFloat32 && !math.IsInf(f, -1):
				f = -math.MaxFloat32
			}
		}
		return U(f)

	case kindSigned:
		if math.IsNaN(f) {
			return 0
		}
		f = math.Trunc(f)
		// min is a power of two and max+1 is one, so both bounds are exact.
		if f <= float64(info.min) {
			return U(info.min)
		}
		if f >= float64(info.max) {
			return U(info.max)
		}
		return U(f)

	default:
		if math.IsNaN(f) {
			return 0
		}
		f = math.Trunc(f)
		if f <= 0 {
			return 0
		}
		if f >= float64(info.max) {
			return U(info.max)
		}
		return U(f)
	}
}

func fromInt[U Channel](dst ChannelType, i int64) U {
	info := dst.info()
	switch info.kind {
	case kindFloat:
		return U(i)
	case kindSigned:
		if i < info.min {
			return U(info.min)
		}
		if i > int64(info.max) {
			return U(info.max)
		}
		return U(i)
	default:
		if i <= 0 {
			return 0
		}
		if uint64(i) > info.max {
			return U(info.max)
		}
		return U(i)
	}
}

func fromUint[U Channel](dst ChannelType, u uint64) U {
	info := dst.info()
	if info.kind == kindFloat {
		return U(u)
	}
	if u > info.max {
		return U(info.max)
	}
	return U(u)
}
