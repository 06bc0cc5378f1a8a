package pixmap

import (
	"sync"

	"github.com/gogpu/pixel"
)

// Pool is a thread-safe pool for reusing Pixmap instances.
//
// Pool groups pixmaps by layout and dimensions, allowing efficient reuse of
// identically-shaped buffers. This reduces GC pressure for applications that
// frequently create and destroy images of similar sizes.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Pixmap
	maxSize int // max pixmaps per bucket
	opts    []Option
}

// poolKey identifies a bucket of identical pixmap specifications.
type poolKey struct {
	layout pixel.Layout
	width  int
	height int
}

// NewPool creates a new pixmap pool with the given maximum pixmaps per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
// opts are applied to every pixmap the pool creates; WithStride is ignored
// because pooled pixmaps are always tightly packed.
func NewPool(maxPerBucket int, opts ...Option) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Pixmap),
		maxSize: maxPerBucket,
		opts:    opts,
	}
}

// Get retrieves a pixmap from the pool or creates a new one.
// A reused pixmap is cleared (all pixels zeroed).
func (p *Pool) Get(m *pixel.Model, t pixel.ChannelType, width, height int) (*Pixmap, error) {
	o := buildOptions(p.opts)
	layout, err := o.registry.Layout(m, t)
	if err != nil {
		return nil, err
	}
	key := poolKey{layout: layout, width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		// Pop from pool
		pm := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		pm.Clear()
		return pm, nil
	}
	p.mu.Unlock()

	return New(m, t, width, height, WithRegistry(o.registry))
}

// Put returns a pixmap to the pool for reuse.
// Pixmaps that do not own their memory (sub-images and FromRaw wrappers)
// or have padded rows are discarded, as is any pixmap arriving when its
// bucket is at capacity.
func (p *Pool) Put(pm *Pixmap) {
	if pm == nil || pm.IsEmpty() || pm.borrowed || pm.stride != pm.layout.RowBytes(pm.width) {
		return
	}

	key := poolKey{layout: pm.layout, width: pm.width, height: pm.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, discard (GC will clean up)
		return
	}
	p.buckets[key] = append(bucket, pm)
}

// Len returns the number of pixmaps currently held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a pixmap from the default pool.
func GetFromDefault(m *pixel.Model, t pixel.ChannelType, width, height int) (*Pixmap, error) {
	return defaultPool.Get(m, t, width, height)
}

// PutToDefault returns a pixmap to the default pool.
func PutToDefault(pm *Pixmap) {
	defaultPool.Put(pm)
}
