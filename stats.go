package chainmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	UsedBuckets  int
	LongestChain int
	// Number of times the table has doubled since construction.
	Resizes int
}
