package pixel

// Channel is the set of Go numeric types usable as a color channel.
//
// The set is closed and matches ChannelType one to one, so generic code can
// recover the channel tag of any T with ChannelTypeOf.
type Channel interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// ChannelType identifies the numeric type of a color channel at runtime.
type ChannelType uint8

const (
	// ChannelInvalid is the zero value and describes no channel type.
	ChannelInvalid ChannelType = iota

	// ChannelUint8 is an 8-bit unsigned integer channel.
	ChannelUint8
	// ChannelUint16 is a 16-bit unsigned integer channel.
	ChannelUint16
	// ChannelUint32 is a 32-bit unsigned integer channel.
	ChannelUint32
	// ChannelUint64 is a 64-bit unsigned integer channel.
	ChannelUint64
	// ChannelInt8 is an 8-bit signed integer channel.
	ChannelInt8
	// ChannelInt16 is a 16-bit signed integer channel.
	ChannelInt16
	// ChannelInt32 is a 32-bit signed integer channel.
	ChannelInt32
	// ChannelInt64 is a 64-bit signed integer channel.
	ChannelInt64
	// ChannelFloat32 is an IEEE 754 single precision channel.
	ChannelFloat32
	// ChannelFloat64 is an IEEE 754 double precision channel.
	ChannelFloat64

	channelTypeCount
)

// channelKind groups channel types by conversion rule.
type channelKind uint8

const (
	kindInvalid channelKind = iota
	kindUnsigned
	kindSigned
	kindFloat
)

// channelInfo contains metadata about a channel type.
type channelInfo struct {
	name string
	size int
	kind channelKind

	// Integer range, used for saturation. Unused for floats.
	min int64
	max uint64
}

var channelInfoTable = [channelTypeCount]channelInfo{
	ChannelInvalid: {name: "Invalid"},
	ChannelUint8:   {name: "Uint8", size: 1, kind: kindUnsigned, max: 1<<8 - 1},
	ChannelUint16:  {name: "Uint16", size: 2, kind: kindUnsigned, max: 1<<16 - 1},
	ChannelUint32:  {name: "Uint32", size: 4, kind: kindUnsigned, max: 1<<32 - 1},
	ChannelUint64:  {name: "Uint64", size: 8, kind: kindUnsigned, max: 1<<64 - 1},
	ChannelInt8:    {name: "Int8", size: 1, kind: kindSigned, min: -1 << 7, max: 1<<7 - 1},
	ChannelInt16:   {name: "Int16", size: 2, kind: kindSigned, min: -1 << 15, max: 1<<15 - 1},
	ChannelInt32:   {name: "Int32", size: 4, kind: kindSigned, min: -1 << 31, max: 1<<31 - 1},
	ChannelInt64:   {name: "Int64", size: 8, kind: kindSigned, min: -1 << 63, max: 1<<63 - 1},
	ChannelFloat32: {name: "Float32", size: 4, kind: kindFloat},
	ChannelFloat64: {name: "Float64", size: 8, kind: kindFloat},
}

func (t ChannelType) info() channelInfo {
	if t >= channelTypeCount {
		return channelInfoTable[ChannelInvalid]
	}
	return channelInfoTable[t]
}

// Size returns the fixed size of one channel value in bytes,
// or 0 if t is not a valid channel type.
func (t ChannelType) Size() int {
	return t.info().size
}

// IsValid returns true if t names a known, fixed-size channel type.
func (t ChannelType) IsValid() bool {
	return t != ChannelInvalid && t < channelTypeCount
}

// IsFloat returns true for floating point channel types.
func (t ChannelType) IsFloat() bool {
	return t.info().kind == kindFloat
}

// IsSigned returns true for signed integer and floating point channel types.
func (t ChannelType) IsSigned() bool {
	k := t.info().kind
	return k == kindSigned || k == kindFloat
}

// String returns a string representation of the channel type.
func (t ChannelType) String() string {
	if t >= channelTypeCount {
		return "Unknown"
	}
	return channelInfoTable[t].name
}

// ChannelTypeOf returns the ChannelType tag of the Go type T.
func ChannelTypeOf[T Channel]() ChannelType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return ChannelUint8
	case uint16:
		return ChannelUint16
	case uint32:
		return ChannelUint32
	case uint64:
		return ChannelUint64
	case int8:
		return ChannelInt8
	case int16:
		return ChannelInt16
	case int32:
		return ChannelInt32
	case int64:
		return ChannelInt64
	case float32:
		return ChannelFloat32
	case float64:
		return ChannelFloat64
	default:
		return ChannelInvalid
	}
}
