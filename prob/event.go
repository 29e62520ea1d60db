package prob

import (
	"cmp"
	"slices"
)

// Event is a finite set of outcomes over which a probability is queried.
// Events are caller-owned and never retained by a Space; build them ad hoc
// per query. The zero value (nil) is the empty event and is safe to query.
//
// Outcomes must be ordered (cmp.Ordered) so that Elements can return a
// deterministic, sorted view.
type Event[T cmp.Ordered] map[T]struct{}

// NewEvent builds an Event from the given members. Duplicates collapse.
//
//	heads := prob.NewEvent("heads")
//	all   := prob.NewEvent("heads", "tails")
func NewEvent[T cmp.Ordered](members ...T) Event[T] {
	e := make(Event[T], len(members))
	for _, m := range members {
		e[m] = struct{}{}
	}

	return e
}

// Contains reports whether outcome is a member of the event.
// Complexity: O(1).
func (e Event[T]) Contains(outcome T) bool {
	_, ok := e[outcome]

	return ok
}

// Len returns the number of outcomes in the event.
// Complexity: O(1).
func (e Event[T]) Len() int {
	return len(e)
}

// Union returns a new Event holding every outcome present in e or other.
// Neither operand is modified. Complexity: O(|e|+|other|).
func (e Event[T]) Union(other Event[T]) Event[T] {
	out := make(Event[T], len(e)+len(other))
	for m := range e {
		out[m] = struct{}{}
	}
	for m := range other {
		out[m] = struct{}{}
	}

	return out
}

// Intersect returns a new Event holding every outcome present in both e and
// other. Neither operand is modified. Complexity: O(min(|e|,|other|)).
func (e Event[T]) Intersect(other Event[T]) Event[T] {
	small, large := e, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Event[T], len(small))
	for m := range small {
		if _, ok := large[m]; ok {
			out[m] = struct{}{}
		}
	}

	return out
}

// Elements returns the outcomes of the event sorted ascending.
// Complexity: O(n log n).
func (e Event[T]) Elements() []T {
	out := make([]T, 0, len(e))
	for m := range e {
		out = append(out, m)
	}
	slices.Sort(out)

	return out
}
