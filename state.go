package timemachine

import "golang.org/x/exp/constraints"

// State is the capability a state value must provide to live inside a
// Machine. ApplyForward mutates the state in place to reflect delta and
// returns the exact inverse delta; ApplyReverse mutates the state in place to
// undo the forward delta that produced its argument. It returns nothing: the
// machine keeps the original forward delta around, so a redo replays it as-is.
//
// Implementations must be deterministic and side-effect free beyond the
// declared mutation, because the machine replays deltas back and forth while
// seeking. For any reachable state, ApplyReverse(ApplyForward(d)) must leave
// the state observably equal to its value before the pair.
type State[F, R any] interface {
	ApplyForward(delta F) R
	ApplyReverse(delta R)
}

// pending is a change recorded but not yet materialized into the current
// state.
type pending[T constraints.Ordered, F any] struct {
	at    T
	delta F
}

// applied is a change already materialized. The original forward delta stays
// paired with its inverse so both directions replay exactly.
type applied[T constraints.Ordered, F, R any] struct {
	at      T
	delta   F
	inverse R
}
