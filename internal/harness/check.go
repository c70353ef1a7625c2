// Package harness drives priority queues through correctness checks and
// RemoveMin timing runs.
package harness

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/ajwerner/avltree/internal/config"
	"github.com/ajwerner/avltree/pqueue"
)

// NewQueue constructs an empty queue of the named implementation.
func NewQueue(impl string) (pqueue.Queue[int64], error) {
	switch impl {
	case config.ImplTree:
		return pqueue.NewTreeQueue[int64](), nil
	case config.ImplHeap:
		return pqueue.NewHeapQueue[int64](), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidImpl, impl)
	}
}

// SortedValues returns n strictly increasing values, each 1 to 10 above the
// previous one, drawn from a source seeded with seed.
func SortedValues(n int, seed int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int64, n)
	var cur int64
	for i := range vals {
		cur += 1 + rng.Int63n(10)
		vals[i] = cur
	}
	return vals
}

// CheckQueue verifies q, which must be empty, against vals, which must be
// sorted. vals[i] is inserted with priority i, from the last to the first,
// so every insertion becomes the new minimum. Then every value is removed
// and must come out in order. The first mismatch is returned as an error.
func CheckQueue(q pqueue.Queue[int64], vals []int64, log zerolog.Logger) error {
	if !q.IsEmpty() {
		return fmt.Errorf("queue must start empty, has %d elements", q.Len())
	}
	log.Info().Int("count", len(vals)).Msg("testing insert")
	for i := len(vals) - 1; i >= 0; i-- {
		log.Debug().Int64("value", vals[i]).Int("priority", i).Msg("adding")
		if err := q.Insert(int64(i), vals[i]); err != nil {
			return fmt.Errorf("inserting %d: %w", vals[i], err)
		}
		if got, ok := q.Min(); !ok || got != vals[i] {
			return fmt.Errorf("incorrect min after inserting %d: got %d (present %t)", vals[i], got, ok)
		}
		if exp := len(vals) - i; q.Len() != exp {
			return fmt.Errorf("incorrect size after inserting %d: got %d, expected %d", vals[i], q.Len(), exp)
		}
	}
	log.Info().Msg("insert passed")

	log.Info().Int("count", len(vals)).Msg("testing remove")
	for i, exp := range vals {
		got, ok := q.RemoveMin()
		if !ok {
			return fmt.Errorf("removed nothing, expected %d", exp)
		}
		log.Debug().Int64("value", got).Msg("removed")
		if got != exp {
			return fmt.Errorf("removed incorrect value: removed %d, expected %d", got, exp)
		}
		if left := len(vals) - i - 1; q.Len() != left {
			return fmt.Errorf("incorrect size after removing %d: got %d, expected %d", got, q.Len(), left)
		}
	}
	if _, ok := q.Min(); ok {
		return fmt.Errorf("queue not empty after removing every value")
	}
	log.Info().Msg("remove passed")
	return nil
}
