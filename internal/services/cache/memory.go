package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryCache is an in-process page store bounded by total byte size.
// When full, the least recently written entries are evicted first.
type MemoryCache struct {
	mu       sync.RWMutex
	items    map[string]*list.Element
	order    *list.List
	maxBytes int64
	size     int64
	stats    CacheStats
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type memoryItem struct {
	key    string
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a store capped at maxSizeMB (0 = unbounded) that
// sweeps expired entries every sweepInterval.
func NewMemoryCache(maxSizeMB int64, sweepInterval time.Duration) *MemoryCache {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}

	mc := &MemoryCache{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		maxBytes: maxSizeMB * 1024 * 1024,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweep(sweepInterval)

	return mc
}

func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	elem, exists := mc.items[key]
	var item *memoryItem
	if exists {
		item = elem.Value.(*memoryItem)
	}
	mc.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	if !mc.now().Before(item.expiry) {
		mc.expire(elem)
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return item.value, true
}

func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	item := &memoryItem{
		key:    key,
		value:  value,
		expiry: mc.now().Add(ttl),
		size:   int64(len(key) + len(value)),
	}

	mc.mu.Lock()
	if old, exists := mc.items[key]; exists {
		mc.removeElement(old)
	}
	mc.makeRoom(item.size)
	mc.items[key] = mc.order.PushBack(item)
	mc.size += item.size
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if elem, exists := mc.items[key]; exists {
		mc.removeElement(elem)
		atomic.AddInt64(&mc.stats.Deletes, 1)
	}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*list.Element)
	mc.order.Init()
	mc.size = 0
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Has(ctx context.Context, key string) bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	elem, exists := mc.items[key]
	return exists && mc.now().Before(elem.Value.(*memoryItem).expiry)
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.RLock()
	size := mc.size
	mc.mu.RUnlock()

	return CacheStats{
		Hits:      atomic.LoadInt64(&mc.stats.Hits),
		Misses:    atomic.LoadInt64(&mc.stats.Misses),
		Sets:      atomic.LoadInt64(&mc.stats.Sets),
		Deletes:   atomic.LoadInt64(&mc.stats.Deletes),
		Evictions: atomic.LoadInt64(&mc.stats.Evictions),
		Size:      size,
		MaxSize:   mc.maxBytes,
	}
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpired()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

// expire removes elem if it is still the entry stored under its key.
// A Set between the read and this call leaves the newer entry in place.
func (mc *MemoryCache) expire(elem *list.Element) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item := elem.Value.(*memoryItem)
	if current, exists := mc.items[item.key]; !exists || current != elem {
		return
	}
	mc.removeElement(elem)
	atomic.AddInt64(&mc.stats.Evictions, 1)
}

// removeExpired must be called with mu held
func (mc *MemoryCache) removeExpired() {
	now := mc.now()
	for _, elem := range mc.items {
		if !now.Before(elem.Value.(*memoryItem).expiry) {
			mc.removeElement(elem)
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
}

// makeRoom must be called with mu held
func (mc *MemoryCache) makeRoom(needed int64) {
	if mc.maxBytes <= 0 || mc.size+needed <= mc.maxBytes {
		return
	}

	mc.removeExpired()

	for mc.size+needed > mc.maxBytes && mc.order.Len() > 0 {
		mc.removeElement(mc.order.Front())
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
}

// removeElement must be called with mu held
func (mc *MemoryCache) removeElement(elem *list.Element) {
	item := elem.Value.(*memoryItem)
	mc.order.Remove(elem)
	delete(mc.items, item.key)
	mc.size -= item.size
}
