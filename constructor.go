package pixel

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Shape names a kind of container, such as "pixmap", whose instances are
// parameterized by a color model and a channel type.
type Shape string

// Factory creates a new container instance. Factories are cached and shared,
// so they must be safe to call concurrently.
type Factory func() any

// Resolver builds the Factory for one (model, channel type) pair of a shape.
//
// A resolver typically switches over t and instantiates generic code for the
// matching Go type:
//
//	func(m *pixel.Model, t pixel.ChannelType) (pixel.Factory, error) {
//	    switch t {
//	    case pixel.ChannelUint8:
//	        return func() any { return newTyped[uint8](m) }, nil
//	    ...
//	    }
//	}
type Resolver func(m *Model, t ChannelType) (Factory, error)

// ConstructorKey identifies a cached Factory.
type ConstructorKey struct {
	Shape   Shape
	Model   *Model
	Channel ChannelType
}

// String returns a unique representation of k. Models are identified by
// address, so distinct models with equal names yield distinct strings.
func (k ConstructorKey) String() string {
	return fmt.Sprintf("%s|%s@%p|%s", k.Shape, k.Model.Name(), k.Model, k.Channel)
}

// Constructors resolves and caches factories for containers whose color
// model and channel type are only known at runtime.
//
// Resolvers are registered explicitly, usually at startup. The first Get for
// a key runs the shape's resolver; every later Get returns the cached
// Factory. Concurrent first lookups of the same key share one resolution.
// Cached factories are never evicted.
//
// Constructors is safe for concurrent use.
type Constructors struct {
	mu        sync.RWMutex
	resolvers map[Shape]Resolver
	factories map[ConstructorKey]Factory

	group       singleflight.Group
	resolutions atomic.Uint64
	logger      *slog.Logger
}

// ConstructorsOption configures Constructors during creation.
type ConstructorsOption func(*Constructors)

// WithConstructorsLogger sets the logger for a Constructors cache.
// Without it the cache logs through the package Logger.
func WithConstructorsLogger(l *slog.Logger) ConstructorsOption {
	return func(cs *Constructors) {
		cs.logger = l
	}
}

// NewConstructors creates an empty constructor cache with no shapes.
func NewConstructors(opts ...ConstructorsOption) *Constructors {
	cs := &Constructors{
		resolvers: make(map[Shape]Resolver),
		factories: make(map[ConstructorKey]Factory),
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *Constructors) log() *slog.Logger {
	if cs.logger != nil {
		return cs.logger
	}
	return Logger()
}

// Register installs the resolver for shape.
// Returns ErrShapeRegistered if shape already has a resolver.
func (cs *Constructors) Register(shape Shape, r Resolver) error {
	if r == nil {
		return fmt.Errorf("pixel: nil resolver for shape %q", shape)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.resolvers[shape]; ok {
		cs.log().Warn("pixel: duplicate shape registration", "shape", string(shape))
		return fmt.Errorf("%w: %q", ErrShapeRegistered, shape)
	}
	cs.resolvers[shape] = r
	return nil
}

// Get returns the Factory for shape instantiated with model m and channel
// type t, resolving it on first use.
//
// Returns ErrUnknownShape if no resolver is registered for shape. Errors
// from the resolver are returned unchanged and are not cached.
func (cs *Constructors) Get(shape Shape, m *Model, t ChannelType) (Factory, error) {
	key := ConstructorKey{Shape: shape, Model: m, Channel: t}

	// Fast path: shared lock
	cs.mu.RLock()
	f, ok := cs.factories[key]
	resolve := cs.resolvers[shape]
	cs.mu.RUnlock()
	if ok {
		return f, nil
	}
	if resolve == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	v, err, _ := cs.group.Do(key.String(), func() (any, error) {
		// A previous flight may have stored the factory after our fast path.
		cs.mu.RLock()
		f, ok := cs.factories[key]
		cs.mu.RUnlock()
		if ok {
			return f, nil
		}

		f, err := resolve(m, t)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("pixel: resolver for %s returned nil factory", key)
		}
		cs.resolutions.Add(1)

		cs.mu.Lock()
		cs.factories[key] = f
		cs.mu.Unlock()

		cs.log().Debug("pixel: constructor resolved",
			"shape", string(shape),
			"model", m.Name(),
			"channel", t.String())
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Factory), nil
}

// New is shorthand for Get followed by a call to the returned Factory.
func (cs *Constructors) New(shape Shape, m *Model, t ChannelType) (any, error) {
	f, err := cs.Get(shape, m, t)
	if err != nil {
		return nil, err
	}
	return f(), nil
}

// Len returns the number of cached factories.
func (cs *Constructors) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return len(cs.factories)
}

// Resolutions returns how many times a resolver produced a new factory.
func (cs *Constructors) Resolutions() uint64 {
	return cs.resolutions.Load()
}
