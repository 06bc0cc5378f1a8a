package pixel

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/pixel/internal/cache"
)

// Layout describes how one color value of a model is packed in memory when
// every channel uses the same numeric type.
//
// A Layout is a pure function of (Model, Channel) and is immutable.
type Layout struct {
	// Model is the color model.
	Model *Model

	// Channel is the numeric type of every channel.
	Channel ChannelType

	// ChannelCount is the number of channels, always positive.
	ChannelCount int

	// ChannelSize is the size of one channel value in bytes.
	ChannelSize int

	// Size is ChannelCount * ChannelSize, the packed size of one color.
	Size int
}

// RowBytes returns the packed size of width colors.
func (l Layout) RowBytes(width int) int {
	return width * l.Size
}

// ImageBytes returns the packed size of a tightly packed width x height image.
func (l Layout) ImageBytes(width, height int) int {
	return l.RowBytes(width) * height
}

// String returns a string representation such as "RGBA/Uint8".
func (l Layout) String() string {
	return l.Model.Name() + "/" + l.Channel.String()
}

// LayoutKey identifies a Layout.
type LayoutKey struct {
	Model   *Model
	Channel ChannelType
}

// newLayout computes the layout for a key, validating it.
func newLayout(key LayoutKey) (Layout, error) {
	if key.Model == nil {
		return Layout{}, fmt.Errorf("%w: nil model", ErrUnsupportedColorModel)
	}
	n := key.Model.ChannelCount()
	if n == 0 {
		return Layout{}, fmt.Errorf("%w: %s declares no channels", ErrUnsupportedColorModel, key.Model.Name())
	}
	if n > MaxChannels {
		return Layout{}, fmt.Errorf("%w: %s declares %d channels, max %d",
			ErrUnsupportedColorModel, key.Model.Name(), n, MaxChannels)
	}
	if !key.Channel.IsValid() {
		return Layout{}, fmt.Errorf("%w: %s has no fixed-size channel type (%s)",
			ErrUnsupportedColorModel, key.Model.Name(), key.Channel)
	}

	size := key.Channel.Size()
	return Layout{
		Model:        key.Model,
		Channel:      key.Channel,
		ChannelCount: n,
		ChannelSize:  size,
		Size:         n * size,
	}, nil
}

// Registry computes and caches Layouts.
//
// Layout lookups happen on per-pixel paths, so each (model, channel type)
// pair is computed once and then served under a shared lock. Entries are
// never evicted: the key space is bounded by the models and channel types
// a program uses.
//
// Registry is safe for concurrent use. The zero value is not usable; create
// one with NewRegistry.
type Registry struct {
	layouts *cache.Cache[LayoutKey, Layout]
	logger  *slog.Logger
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger for a Registry.
// Without it the registry logs through the package Logger.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty layout registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		layouts: cache.New[LayoutKey, Layout](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns a process-wide registry for callers that do not
// manage their own. Every operation also accepts an explicit Registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// Layout returns the layout of model m with channels of type t.
//
// Returns ErrUnsupportedColorModel if m is nil, declares no channels or more
// than MaxChannels, or if t is not a fixed-size channel type. Failed lookups
// are not cached.
func (r *Registry) Layout(m *Model, t ChannelType) (Layout, error) {
	key := LayoutKey{Model: m, Channel: t}
	return r.layouts.GetOrCreateErr(key, func() (Layout, error) {
		l, err := newLayout(key)
		if err != nil {
			return Layout{}, err
		}
		r.log().Debug("pixel: layout computed",
			"model", m.Name(),
			"channel", t.String(),
			"channels", l.ChannelCount,
			"size", l.Size)
		return l, nil
	})
}

// Len returns the number of cached layouts.
func (r *Registry) Len() int {
	return r.layouts.Len()
}

// CacheStats contains lookup statistics of a Registry.
type CacheStats = cache.Stats

// Stats returns lookup statistics of the layout cache.
func (r *Registry) Stats() CacheStats {
	return r.layouts.Stats()
}

// LayoutOf returns the layout of model m with channels of Go type T.
func LayoutOf[T Channel](r *Registry, m *Model) (Layout, error) {
	return r.Layout(m, ChannelTypeOf[T]())
}
