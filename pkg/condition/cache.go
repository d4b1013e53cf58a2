package condition

import "sync"

// onceCache memoizes a value per key. The compute function runs at most once
// per key, even under concurrent first access; later reads only take the read
// lock.
type onceCache[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
	onces  map[K]*sync.Once
}

func newOnceCache[K comparable, V any]() *onceCache[K, V] {
	return &onceCache[K, V]{
		values: make(map[K]V),
		onces:  make(map[K]*sync.Once),
	}
}

func (c *onceCache[K, V]) get(key K, compute func() V) V {
	c.mu.RLock()
	if v, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	once, exists := c.onces[key]
	if !exists {
		once = new(sync.Once)
		c.onces[key] = once
	}
	c.mu.Unlock()

	once.Do(func() {
		v := compute()
		c.mu.Lock()
		c.values[key] = v
		c.mu.Unlock()
	})

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

func (c *onceCache[K, V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
