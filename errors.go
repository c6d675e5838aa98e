package timemachine

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrTimeEvicted marks a request for a timestamp that precedes the retention
// boundary. Match with errors.Is; the concrete error is an EvictedError
// carrying both timestamps.
var ErrTimeEvicted = errors.New("timemachine: timestamp evicted from history")

// EvictedError reports the requested timestamp and the retention boundary it
// fell behind.
type EvictedError[T constraints.Ordered] struct {
	Requested T
	Boundary  T
}

func (e EvictedError[T]) Error() string {
	return fmt.Sprintf("timemachine: timestamp %v evicted from history, boundary is %v", e.Requested, e.Boundary)
}

func (e EvictedError[T]) Is(target error) bool {
	return target == ErrTimeEvicted
}
