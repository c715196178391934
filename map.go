package chainmap

// HashTable is a string-keyed hash map with separate chaining.
// Every bucket holds a singly-linked chain of entries. The table doubles its
// capacity once the number of entries reaches capacity*loadFactor and never
// shrinks, except through Clear.
//
// Enumeration walks buckets in index order and chains in link order. That
// order is not stable across a resize.
//
// HashTable is not safe for concurrent use.
type HashTable[K ~string, V any] struct {
	table[K, V]
}

// Returns a new hash table. Invalid options are reported together.
func New[K ~string, V any](opts ...Option) (*HashTable[K, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var ht HashTable[K, V]
	ht.init(c)

	return &ht, nil
}

// Like New, but panics on invalid options.
func MustNew[K ~string, V any](opts ...Option) *HashTable[K, V] {
	ht, err := New[K, V](opts...)
	if err != nil {
		panic(err)
	}

	return ht
}

// Stores the value under the key, overwriting any previous value.
// May trigger a resize.
func (ht *HashTable[K, V]) Set(key K, value V) {
	ht.set(key, value)
}

// Returns the value stored under the key and whether it was found.
func (ht *HashTable[K, V]) Get(key K) (V, bool) {
	return ht.get(key)
}

func (ht *HashTable[K, V]) Has(key K) bool {
	return ht.has(key)
}

// Removes the key. Returns false if it was absent.
func (ht *HashTable[K, V]) Remove(key K) bool {
	return ht.remove(key)
}

func (ht *HashTable[K, V]) Len() int {
	return ht.size
}

func (ht *HashTable[K, V]) Capacity() int {
	return ht.capacity
}

func (ht *HashTable[K, V]) LoadFactor() float64 {
	return ht.loadFactor
}

// Removes all entries and resets the capacity to the initial one.
func (ht *HashTable[K, V]) Clear() {
	ht.clear()
}

// Keys, Values and Entries return fresh snapshots.
func (ht *HashTable[K, V]) Keys() []K {
	return ht.keys()
}

func (ht *HashTable[K, V]) Values() []V {
	return ht.values()
}

func (ht *HashTable[K, V]) Entries() []Entry[K, V] {
	return ht.entries()
}

func (ht *HashTable[K, V]) Stats() Stats {
	return ht.stats()
}
