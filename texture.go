package pixel

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU texture format with the same memory
// layout as l, or gputypes.TextureFormatUndefined if there is none.
//
// Only layouts whose bytes can be uploaded unchanged are mapped; the caller
// decides how the channel values are interpreted on the GPU.
func (l Layout) TextureFormat() gputypes.TextureFormat {
	if l.Channel != ChannelUint8 {
		return gputypes.TextureFormatUndefined
	}
	switch l.Model {
	case RGBAModel:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRAModel:
		return gputypes.TextureFormatBGRA8Unorm
	case GrayModel:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
