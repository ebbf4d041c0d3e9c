package sdui

import (
	"container/list"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// ComponentCache memoizes rendered subtrees keyed by their input signature.
// Eviction is least-recently-accessed once capacity is reached, with an
// absolute-age sweep (ExpireOlderThan) as the second trigger; whichever
// fires first wins.
//
// The cache is the one internally synchronized piece of the engine, because
// the host's sweep timer races the render loop.
type ComponentCache struct {
	mu       sync.RWMutex
	capacity int
	order    *list.List // front is most recently used
	entries  map[uint64]*list.Element

	// Statistics (atomic for lock-free reads)
	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	key      uint64
	view     View
	recordID string
	storedAt time.Time
}

// NewComponentCache creates a cache holding at most capacity subtrees. A
// capacity of zero or less disables caching: every lookup misses and stores
// are dropped.
func NewComponentCache(capacity int) *ComponentCache {
	return &ComponentCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[uint64]*list.Element),
	}
}

// Get returns the cached view for a signature. A hit refreshes the entry's
// recency, protecting it from the next capacity eviction.
func (cc *ComponentCache) Get(key uint64) (View, bool) {
	cc.mu.Lock()
	el, ok := cc.entries[key]
	if ok {
		cc.order.MoveToFront(el)
	}
	cc.mu.Unlock()

	if !ok {
		cc.misses.Add(1)
		return nil, false
	}
	cc.hits.Add(1)
	return el.Value.(*cacheEntry).view, true
}

// Put stores a rendered view under its signature, evicting the least
// recently used entry when full. recordID tags the entry for
// InvalidateRecord; GlobalScope for record-free subtrees.
func (cc *ComponentCache) Put(key uint64, recordID string, v View) {
	if cc.capacity <= 0 {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if el, ok := cc.entries[key]; ok {
		el.Value.(*cacheEntry).view = v
		el.Value.(*cacheEntry).storedAt = time.Now()
		cc.order.MoveToFront(el)
		return
	}
	if cc.order.Len() >= cc.capacity {
		oldest := cc.order.Back()
		if oldest != nil {
			cc.order.Remove(oldest)
			delete(cc.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	cc.entries[key] = cc.order.PushFront(&cacheEntry{
		key:      key,
		view:     v,
		recordID: recordID,
		storedAt: time.Now(),
	})
}

// ExpireOlderThan evicts every entry stored longer ago than maxAge,
// regardless of recency, and returns how many went. Hosts call it from a
// periodic timer.
func (cc *ComponentCache) ExpireOlderThan(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	cc.mu.Lock()
	defer cc.mu.Unlock()

	evicted := 0
	var next *list.Element
	for el := cc.order.Front(); el != nil; el = next {
		next = el.Next()
		entry := el.Value.(*cacheEntry)
		if entry.storedAt.Before(cutoff) {
			cc.order.Remove(el)
			delete(cc.entries, entry.key)
			evicted++
		}
	}
	return evicted
}

// InvalidateRecord evicts every entry rendered against the given record and
// returns how many went. Hosts call it when a record mutates, since record
// field values are not part of the signature.
func (cc *ComponentCache) InvalidateRecord(recordID string) int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	evicted := 0
	var next *list.Element
	for el := cc.order.Front(); el != nil; el = next {
		next = el.Next()
		entry := el.Value.(*cacheEntry)
		if entry.recordID == recordID {
			cc.order.Remove(el)
			delete(cc.entries, entry.key)
			evicted++
		}
	}
	return evicted
}

// Clear drops every entry. Idempotent; hit/miss counters survive so
// diagnostics stay meaningful across memory-pressure clears.
func (cc *ComponentCache) Clear() {
	cc.mu.Lock()
	cc.order.Init()
	cc.entries = make(map[uint64]*list.Element)
	cc.mu.Unlock()
}

// Size returns the number of cached subtrees.
func (cc *ComponentCache) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.entries)
}

// Capacity returns the configured maximum entry count.
func (cc *ComponentCache) Capacity() int {
	return cc.capacity
}

// Stats returns a snapshot of cache performance counters.
func (cc *ComponentCache) Stats() CacheStats {
	cc.mu.RLock()
	entries := len(cc.entries)
	cc.mu.RUnlock()

	return CacheStats{
		Hits:     cc.hits.Load(),
		Misses:   cc.misses.Load(),
		Entries:  entries,
		Capacity: cc.capacity,
	}
}

// CacheStats contains cache performance counters.
type CacheStats struct {
	Hits     int64
	Misses   int64
	Entries  int
	Capacity int
}

// HitRate returns the hit rate as a percentage (0-100), 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// String returns a human-readable summary for debug footers and logs.
func (s CacheStats) String() string {
	return fmt.Sprintf("hits=%d misses=%d entries=%d/%d hitRate=%.1f%%",
		s.Hits, s.Misses, s.Entries, s.Capacity, s.HitRate())
}

// CacheSignature computes the key under which a subtree's rendered view is
// memoized: FNV-1a over the render path, the subtree's structural
// fingerprint, the identity of the record in scope, the live values of every
// binding key the subtree references, and the palette name. Keyed by inputs,
// not output, so an unchanged subtree costs one hash, not one render.
func CacheSignature(path string, c *Component, ctx Context) uint64 {
	h := fnv.New64a()
	var b [8]byte

	writeStr := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}

	writeStr(path)
	writeU64(c.fingerprint)
	if ctx.Current != nil {
		writeStr(ctx.Current.RecordID())
	} else {
		writeStr(GlobalScope)
	}
	writeStr(ctx.palette().Name)

	if ctx.Bindings == nil {
		return h.Sum64()
	}
	for _, field := range c.refKeys {
		writeStr(field)
		key := BindingKeyFor(field, ctx.Current)
		if v, ok := ctx.Bindings.text[key]; ok {
			h.Write([]byte{'t'})
			writeStr(v)
		}
		if v, ok := ctx.Bindings.bools[key]; ok {
			h.Write([]byte{'b'})
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
		if v, ok := ctx.Bindings.doubles[key]; ok {
			h.Write([]byte{'d'})
			writeU64(math.Float64bits(v))
		}
		if v, ok := ctx.Bindings.ints[key]; ok {
			h.Write([]byte{'i'})
			writeU64(uint64(int64(v)))
		}
		if v, ok := ctx.Bindings.dates[key]; ok {
			h.Write([]byte{'D'})
			writeU64(uint64(v.UnixNano()))
		}
		if v, ok := ctx.Bindings.selections[key]; ok {
			h.Write([]byte{'s'})
			writeU64(uint64(int64(v)))
		}
	}
	return h.Sum64()
}
