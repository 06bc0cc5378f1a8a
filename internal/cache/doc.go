// Package cache provides a generic populate-once cache for small, bounded
// key spaces.
//
// Entries are computed at most once per key and are never evicted. This
// fits metadata derived from a finite set of compile-time types, such as
// color layouts keyed by (model, channel type).
//
//	c := cache.New[string, int]()
//	v, err := c.GetOrCreateErr("key", func() (int, error) { return 42, nil })
//
// # Thread Safety
//
// Cache is safe for concurrent use. Hits take only a shared lock.
// A Cache must not be copied after creation (it contains a mutex).
package cache
