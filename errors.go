package pixel

import "errors"

// Errors reported by the marshalling core. They describe bad caller input
// and are returned synchronously; retrying the same call cannot succeed.
//
// Buffer capacity is deliberately not among them: passing a buffer shorter
// than a layout or copy job requires panics with a runtime bounds error.
var (
	// ErrUnsupportedColorModel is returned when a (model, channel type) pair
	// cannot be described by a Layout.
	ErrUnsupportedColorModel = errors.New("pixel: unsupported color model")

	// ErrChannelCountMismatch is returned when a channel array length does
	// not match the channel count of the target model.
	ErrChannelCountMismatch = errors.New("pixel: channel count mismatch")

	// ErrInvalidDescriptor is returned when a row copy descriptor has
	// negative dimensions.
	ErrInvalidDescriptor = errors.New("pixel: invalid copy descriptor")

	// ErrUnknownShape is returned when no resolver is registered for a
	// container shape.
	ErrUnknownShape = errors.New("pixel: unknown container shape")

	// ErrShapeRegistered is returned when a resolver is registered twice for
	// the same container shape.
	ErrShapeRegistered = errors.New("pixel: container shape already registered")
)
