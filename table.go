package chainmap

import "go.uber.org/zap"

type table[K ~string, V any] struct {
	buckets []*entry[K, V]

	capacity        int
	initialCapacity int
	size            int
	loadFactor      float64

	resizes int

	hashFunc HashFunc
	logger   *zap.Logger
}

func (t *table[K, V]) init(c config) {
	t.capacity = c.initialCapacity
	t.initialCapacity = c.initialCapacity
	t.loadFactor = c.loadFactor
	t.hashFunc = c.hashFunc
	t.logger = c.logger
	t.buckets = make([]*entry[K, V], t.capacity)
}

func (t *table[K, V]) index(key K, capacity int) int {
	return bucketIndex(t.hashFunc(string(key)), capacity)
}

// place stores the pair in buckets, overwriting the value of an existing
// key in place or appending a new node at the tail of the chain.
// Reports whether a new node was linked. It never touches size.
func (t *table[K, V]) place(buckets []*entry[K, V], key K, value V) bool {
	idx := t.index(key, len(buckets))

	cur := buckets[idx]
	if cur == nil {
		buckets[idx] = &entry[K, V]{key: key, value: value}
		return true
	}

	for {
		if cur.key == key {
			cur.value = value
			return false
		}

		if cur.next == nil {
			cur.next = &entry[K, V]{key: key, value: value}
			return true
		}

		cur = cur.next
	}
}

func (t *table[K, V]) set(key K, value V) {
	if !t.place(t.buckets, key, value) {
		return
	}

	t.size++

	if float64(t.size) >= float64(t.capacity)*t.loadFactor {
		t.resize()
	}
}

// resize doubles the capacity. The new bucket array is filled completely
// before it replaces the old one. Entries are re-placed in old bucket order,
// then chain order, so enumeration order changes across a resize.
func (t *table[K, V]) resize() {
	capacity := t.capacity * 2
	buckets := make([]*entry[K, V], capacity)

	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			t.place(buckets, e.key, e.value)
		}
	}

	t.logger.Debug("table resized",
		zap.Int("from", t.capacity),
		zap.Int("to", capacity),
		zap.Int("size", t.size),
	)

	t.buckets = buckets
	t.capacity = capacity
	t.resizes++
}

func (t *table[K, V]) lookup(key K) *entry[K, V] {
	for e := t.buckets[t.index(key, t.capacity)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}

	return nil
}

func (t *table[K, V]) get(key K) (V, bool) {
	if e := t.lookup(key); e != nil {
		return e.value, true
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) has(key K) bool {
	return t.lookup(key) != nil
}

func (t *table[K, V]) remove(key K) bool {
	idx := t.index(key, t.capacity)

	var prev *entry[K, V]
	for cur := t.buckets[idx]; cur != nil; prev, cur = cur, cur.next {
		if cur.key != key {
			continue
		}

		if prev == nil {
			t.buckets[idx] = cur.next
		} else {
			prev.next = cur.next
		}
		t.size--

		return true
	}

	return false
}

// clear drops every entry and shrinks the table back to its initial capacity.
func (t *table[K, V]) clear() {
	t.logger.Debug("table cleared",
		zap.Int("capacity", t.capacity),
		zap.Int("dropped", t.size),
	)

	t.buckets = make([]*entry[K, V], t.initialCapacity)
	t.capacity = t.initialCapacity
	t.size = 0
}

func (t *table[K, V]) walk(fn func(e *entry[K, V])) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			fn(e)
		}
	}
}

func (t *table[K, V]) keys() []K {
	keys := make([]K, 0, t.size)
	t.walk(func(e *entry[K, V]) {
		keys = append(keys, e.key)
	})

	return keys
}

func (t *table[K, V]) values() []V {
	values := make([]V, 0, t.size)
	t.walk(func(e *entry[K, V]) {
		values = append(values, e.value)
	})

	return values
}

func (t *table[K, V]) entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	t.walk(func(e *entry[K, V]) {
		entries = append(entries, Entry[K, V]{Key: e.key, Value: e.value})
	})

	return entries
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		LoadFactor: t.loadFactor,
		Resizes:    t.resizes,
	}

	for _, head := range t.buckets {
		if head == nil {
			continue
		}
		s.UsedBuckets++

		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
