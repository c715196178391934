package chainmap

// entry is a single node of a bucket chain.
// A bucket slot holding nil is an empty chain.
type entry[K ~string, V any] struct {
	key   K
	value V

	// Chains only grow at the tail, so within a bucket the link order
	// is the insertion order (until the next resize).
	next *entry[K, V]
}

// Entry is a key/value pair returned by Entries.
type Entry[K ~string, V any] struct {
	Key   K
	Value V
}
