package chainmap

// HashSet is a set-like data structure on top of the chained hash table.
// It stores keys only, values are zero-sized.
//
// HashSet is not safe for concurrent use.
type HashSet[K ~string] struct {
	t table[K, struct{}]
}

func NewSet[K ~string](opts ...Option) (*HashSet[K], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var hs HashSet[K]
	hs.t.init(c)

	return &hs, nil
}

// Puts a key in the set. Returns whether the key is new.
func (hs *HashSet[K]) Add(key K) bool {
	if hs.t.has(key) {
		return false
	}
	hs.t.set(key, struct{}{})

	return true
}

func (hs *HashSet[K]) Has(key K) bool {
	return hs.t.has(key)
}

func (hs *HashSet[K]) Remove(key K) bool {
	return hs.t.remove(key)
}

func (hs *HashSet[K]) Len() int {
	return hs.t.size
}

func (hs *HashSet[K]) Clear() {
	hs.t.clear()
}

func (hs *HashSet[K]) Keys() []K {
	return hs.t.keys()
}

func (hs *HashSet[K]) Stats() Stats {
	return hs.t.stats()
}
