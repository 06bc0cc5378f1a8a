package pixel

import "strings"

// MaxChannels is the largest number of channels a color model may declare.
const MaxChannels = 16

// Model identifies a color model and declares its canonical channel order.
//
// Models are compared by identity, so a Model value should be created once
// (typically as a package-level variable) and shared. A Model is immutable
// after creation.
type Model struct {
	name     string
	channels []string
}

// NewModel creates a color model with the given channel names in canonical
// order. The channel order is the order used by color values, channel arrays
// and raw memory.
func NewModel(name string, channels ...string) *Model {
	return &Model{
		name:     name,
		channels: append([]string(nil), channels...),
	}
}

// Built-in color models.
var (
	// GrayModel is a single luma channel.
	GrayModel = NewModel("Gray", "Y")

	// GrayAlphaModel is luma followed by alpha.
	GrayAlphaModel = NewModel("GrayAlpha", "Y", "A")

	// RGBModel is red, green, blue.
	RGBModel = NewModel("RGB", "R", "G", "B")

	// BGRModel is blue, green, red.
	BGRModel = NewModel("BGR", "B", "G", "R")

	// RGBAModel is red, green, blue, alpha.
	RGBAModel = NewModel("RGBA", "R", "G", "B", "A")

	// BGRAModel is blue, green, red, alpha.
	// Common on Windows and some GPU formats.
	BGRAModel = NewModel("BGRA", "B", "G", "R", "A")

	// ARGBModel is alpha, red, green, blue.
	ARGBModel = NewModel("ARGB", "A", "R", "G", "B")

	// CMYKModel is cyan, magenta, yellow, key.
	CMYKModel = NewModel("CMYK", "C", "M", "Y", "K")
)

// Name returns the model name.
func (m *Model) Name() string {
	if m == nil {
		return "<nil>"
	}
	return m.name
}

// ChannelCount returns the number of channels the model declares.
func (m *Model) ChannelCount() int {
	if m == nil {
		return 0
	}
	return len(m.channels)
}

// ChannelName returns the name of channel i in canonical order.
func (m *Model) ChannelName(i int) string {
	return m.channels[i]
}

// ChannelIndex returns the canonical index of the named channel, or -1.
func (m *Model) ChannelIndex(name string) int {
	if m == nil {
		return -1
	}
	for i, c := range m.channels {
		if c == name {
			return i
		}
	}
	return -1
}

// String returns the model name followed by its channel order,
// e.g. "BGRA(B,G,R,A)".
func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.name + "(" + strings.Join(m.channels, ",") + ")"
}
