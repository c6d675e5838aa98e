// Package timemachine is an in-process container that lets a caller mutate an
// opaque state value at arbitrary points along a single timeline and query the
// state as of any timestamp. Changes are recorded as reversible deltas in two
// logs rather than overwriting the value, so moving the position only crosses
// the entries between the old and the new position.
package timemachine

import (
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/jfrikker/time-machine/utils"
)

type Options struct {
	Logger utils.Logger
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
}

// Machine owns a state value S together with two delta logs. The forward log
// holds changes not yet materialized, nearest future change on top; the
// reverse log holds changes already applied, most recent at the back, each
// paired with enough to redo it without recomputation. Timestamps are opaque
// ordered values supplied by the caller; the machine compares them and
// nothing else.
//
// A Machine is not safe for concurrent use. ValueAt repartitions the logs
// even though it is a read, so a caller needing shared access must serialize
// every call externally.
type Machine[S State[F, R], F, R any, T constraints.Ordered] struct {
	current S
	forward []pending[T, F]
	reverse utils.Deque[applied[T, F, R]]
	oldest  T
	bounded bool
	log     utils.Logger
	stats   MachineStats
}

// MachineStats are cumulative counters over the machine's lifetime, readable
// through Stats and exported by Collector.
type MachineStats struct {
	Applied  uint64 // forward deltas materialized
	Reverted uint64 // applied deltas undone
	Seeks    uint64
	Evicted  uint64 // reverse log entries discarded
}

// New creates a machine that takes ownership of initial, with empty logs and
// no retention boundary. All four type parameters must be supplied at the
// call site; none of them is inferable from initial alone.
func New[S State[F, R], F, R any, T constraints.Ordered](initial S, opts Options) *Machine[S, F, R, T] {
	opts.SetDefaults()
	return &Machine[S, F, R, T]{
		current: initial,
		log:     opts.Logger,
	}
}

// Change records delta to take effect at timestamp at. The delta is not
// applied here; it materializes the next time the position reaches at or
// later. Changes recorded at the same timestamp materialize in recording
// order. Fails with an EvictedError when at precedes the retention boundary,
// leaving the machine untouched.
func (m *Machine[S, F, R, T]) Change(delta F, at T) error {
	if err := m.checkRetention(at); err != nil {
		return err
	}
	m.moveTo(at)
	m.forward = append(m.forward, pending[T, F]{at: at, delta: delta})
	m.log.Debug("change recorded", "at", at, "pending", len(m.forward))
	return nil
}

// ValueAt seeks to at and returns the machine's own state as of that
// timestamp. The returned value is a read-only view: the caller must neither
// mutate it nor retain it across further calls, as any later operation may
// seek it to a different position. Fails with an EvictedError when at
// precedes the retention boundary.
func (m *Machine[S, F, R, T]) ValueAt(at T) (S, error) {
	if err := m.checkRetention(at); err != nil {
		var none S
		return none, err
	}
	m.moveTo(at)
	return m.current, nil
}

// ForgetAncientHistory materializes every pending change with timestamp
// <= until, then discards reverse log entries older than until and raises the
// retention boundary to until. Entries exactly at until survive. Irreversible:
// any later request for a timestamp before the boundary fails with an
// EvictedError. The boundary never decreases; a call below it trims nothing.
func (m *Machine[S, F, R, T]) ForgetAncientHistory(until T) {
	m.moveForwardTo(until)
	dropped := uint64(0)
	for m.reverse.Len() > 0 && m.reverse.Front().at < until {
		m.reverse.PopFront()
		dropped++
	}
	m.stats.Evicted += dropped
	if !m.bounded || until > m.oldest {
		m.oldest = until
		m.bounded = true
	}
	if dropped > 0 {
		m.log.Debug("history trimmed", "until", until, "dropped", dropped)
	}
}

// Oldest returns the retention boundary and whether one has been set.
func (m *Machine[S, F, R, T]) Oldest() (T, bool) {
	return m.oldest, m.bounded
}

// Stats returns the machine's cumulative counters.
func (m *Machine[S, F, R, T]) Stats() MachineStats {
	return m.stats
}

// Len returns the current depth of the two logs.
func (m *Machine[S, F, R, T]) Len() (forward, reverse int) {
	return len(m.forward), m.reverse.Len()
}

func (m *Machine[S, F, R, T]) checkRetention(at T) error {
	if m.bounded && at < m.oldest {
		return EvictedError[T]{Requested: at, Boundary: m.oldest}
	}
	return nil
}

// moveTo seeks the current position to at. Forward phase first, then
// backward; seeking again to the same position is a no-op. Cost is
// proportional to the entries crossed, not to the timestamp distance.
func (m *Machine[S, F, R, T]) moveTo(at T) {
	m.stats.Seeks++
	m.moveForwardTo(at)
	m.moveBackwardTo(at)
}

// moveForwardTo materializes pending changes with timestamp <= at, nearest
// first, parking each with its inverse at the back of the reverse log.
func (m *Machine[S, F, R, T]) moveForwardTo(at T) {
	for len(m.forward) > 0 {
		next := m.forward[len(m.forward)-1]
		if next.at > at {
			break
		}
		m.forward = m.forward[:len(m.forward)-1]
		inverse := m.current.ApplyForward(next.delta)
		m.reverse.PushBack(applied[T, F, R]{at: next.at, delta: next.delta, inverse: inverse})
		m.stats.Applied++
	}
}

// moveBackwardTo undoes applied changes with timestamp > at, newest first,
// returning each original forward delta to the top of the forward log.
func (m *Machine[S, F, R, T]) moveBackwardTo(at T) {
	for m.reverse.Len() > 0 {
		if m.reverse.Back().at <= at {
			break
		}
		done := m.reverse.PopBack()
		m.current.ApplyReverse(done.inverse)
		m.forward = append(m.forward, pending[T, F]{at: done.at, delta: done.delta})
		m.stats.Reverted++
	}
}
