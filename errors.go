package chainmap

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidLoadFactor = errors.New("load factor must be in (0, 1]")
	ErrInvalidHashFunc   = errors.New("hash function must not be nil")
)
