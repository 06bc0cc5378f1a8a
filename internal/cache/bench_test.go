package cache

import (
	"strconv"
	"testing"
)

func BenchmarkCacheHit(b *testing.B) {
	c := New[string, int]()
	for i := 0; i < 100; i++ {
		c.GetOrCreateErr(strconv.Itoa(i), func() (int, error) { return i, nil })
	}
	create := func() (int, error) { return 0, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreateErr("50", create)
	}
}

func BenchmarkCacheHitParallel(b *testing.B) {
	c := New[int, int]()
	for i := 0; i < 16; i++ {
		c.GetOrCreateErr(i, func() (int, error) { return i, nil })
	}
	create := func() (int, error) { return 0, nil }

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.GetOrCreateErr(i&15, create)
			i++
		}
	})
}
