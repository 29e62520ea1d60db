package prob

import (
	"cmp"
	"fmt"
	"math"
	"sync/atomic"
)

// Epsilon is the absolute tolerance used when validating that the
// probabilities of a mapping sum to one.
const Epsilon = 1e-9

// Space is a finite discrete probability space over outcomes of type T.
//
// A Space owns an immutable outcome→probability mapping and its derived
// domain (the key set of the mapping). Both are fixed at construction; the
// only mutable state is the strict/lenient membership flag, held in an
// atomic so that toggling it alongside concurrent queries is race-free.
//
// Construct with New; the zero value is not usable.
type Space[T cmp.Ordered] struct {
	// space maps each elementary outcome to P({outcome}).
	space map[T]float64

	// domain is the key set of space, derived once at construction.
	domain Event[T]

	// ignoreUnknown selects lenient membership: when true, outcomes outside
	// the domain are tolerated and contribute zero probability.
	ignoreUnknown atomic.Bool
}

// New constructs a probability space from a mapping of every elementary
// outcome to its probability. It deep-copies the input to ensure
// immutability.
//
// Validation runs in a single pass: a negative value fails first with
// ErrNegativeProbability, then a total deviating from 1 by more than
// Epsilon fails with ErrProbabilitySum. Both match ErrInvalidDistribution
// via errors.Is. An empty mapping has total 0 and is therefore always
// rejected with ErrProbabilitySum.
//
// The space starts in strict mode (unknown outcomes in events are errors).
// Complexity: O(n) time and memory.
func New[T cmp.Ordered](mapping map[T]float64) (*Space[T], error) {
	total := 0.0
	for outcome, p := range mapping {
		if p < 0 {
			return nil, fmt.Errorf("%w: P(%v)=%g", ErrNegativeProbability, outcome, p)
		}
		total += p
	}
	if math.Abs(total-1.0) > Epsilon {
		return nil, fmt.Errorf("%w: total=%g", ErrProbabilitySum, total)
	}

	// Deep copy to prevent external mutation
	s := &Space[T]{
		space:  make(map[T]float64, len(mapping)),
		domain: make(Event[T], len(mapping)),
	}
	for outcome, p := range mapping {
		s.space[outcome] = p
		s.domain[outcome] = struct{}{}
	}

	return s, nil
}

// checkEvent is the centralized membership policy: in strict mode every
// outcome of the event must belong to the domain, otherwise the query fails
// with ErrUnknownOutcome; in lenient mode no check is performed.
//
// VERY IMPORTANT: every public query funnels through this check (directly
// or via sumProbability) before any set algebra — later operations rely on
// their operands having been checked here and must not relax it.
func (s *Space[T]) checkEvent(event Event[T]) error {
	if s.ignoreUnknown.Load() {
		return nil
	}
	for outcome := range event {
		if _, ok := s.domain[outcome]; !ok {
			return fmt.Errorf("%w: %v", ErrUnknownOutcome, outcome)
		}
	}

	return nil
}

// sumProbability applies the membership policy, then totals P({outcome})
// over the event. In lenient mode outcomes absent from the mapping are
// skipped; in strict mode absence is re-checked even though checkEvent has
// already rejected it, so derived sets fed in by Union/Intersection pass
// through the same policy.
func (s *Space[T]) sumProbability(event Event[T]) (float64, error) {
	if err := s.checkEvent(event); err != nil {
		return 0, err
	}
	lenient := s.ignoreUnknown.Load()
	total := 0.0
	for outcome := range event {
		p, ok := s.space[outcome]
		if !ok {
			if !lenient {
				return 0, fmt.Errorf("%w: %v", ErrUnknownOutcome, outcome)
			}

			continue
		}
		total += p
	}

	return total, nil
}

// Probability returns P(event), the sum of the probabilities of every
// outcome in the event. The empty event has probability 0; the full domain
// has probability 1 (±Epsilon, by the sum invariant).
// Returns ErrUnknownOutcome in strict mode if the event references an
// outcome outside the domain.
// Complexity: O(|event|).
func (s *Space[T]) Probability(event Event[T]) (float64, error) {
	return s.sumProbability(event)
}

// Complement returns P(eventᶜ) = 1 − P(event). Same membership policy and
// failure conditions as Probability.
// Complexity: O(|event|).
func (s *Space[T]) Complement(event Event[T]) (float64, error) {
	p, err := s.sumProbability(event)
	if err != nil {
		return 0, err
	}

	return 1.0 - p, nil
}

// Union returns P(a ∪ b). Both operands are checked against the domain
// before combining; the union is taken at the raw set level, so in lenient
// mode unknown outcomes may appear transiently in the combined set and are
// dropped when probabilities are totaled.
// Complexity: O(|a|+|b|).
func (s *Space[T]) Union(a, b Event[T]) (float64, error) {
	if err := s.checkEvent(a); err != nil {
		return 0, err
	}
	if err := s.checkEvent(b); err != nil {
		return 0, err
	}

	return s.sumProbability(a.Union(b))
}

// Intersection returns P(a ∩ b). Both operands are checked against the
// domain before combining. P(a ∩ ∅) = 0 always.
// Complexity: O(|a|+|b|).
func (s *Space[T]) Intersection(a, b Event[T]) (float64, error) {
	if err := s.checkEvent(a); err != nil {
		return 0, err
	}
	if err := s.checkEvent(b); err != nil {
		return 0, err
	}

	return s.sumProbability(a.Intersect(b))
}

// Conditional returns P(a|b) = P(a ∩ b) / P(b).
//
// Both operands are checked against the domain first; then P(b) is
// computed, and if it is exactly 0 (a floating-point equality test, not a
// tolerance band) the query fails with ErrZeroCondition. Unknown outcomes
// in either operand follow the current mode, consistently through both the
// numerator and the denominator.
// Complexity: O(|a|+|b|).
func (s *Space[T]) Conditional(a, b Event[T]) (float64, error) {
	if err := s.checkEvent(a); err != nil {
		return 0, err
	}
	if err := s.checkEvent(b); err != nil {
		return 0, err
	}
	probB, err := s.sumProbability(b)
	if err != nil {
		return 0, err
	}
	if probB == 0 {
		return 0, ErrZeroCondition
	}
	probAB, err := s.Intersection(a, b)
	if err != nil {
		return 0, err
	}

	return probAB / probB, nil
}

// Domain returns the outcomes of the sample space sorted ascending.
// Complexity: O(n log n).
func (s *Space[T]) Domain() []T {
	return s.domain.Elements()
}

// Len returns the number of elementary outcomes in the sample space.
// Complexity: O(1).
func (s *Space[T]) Len() int {
	return len(s.space)
}

// Contains reports whether outcome belongs to the sample space.
// Complexity: O(1).
func (s *Space[T]) Contains(outcome T) bool {
	return s.domain.Contains(outcome)
}

// IgnoreUnknown reports the current membership mode: false is strict
// (unknown outcomes in events are errors), true is lenient (they contribute
// zero probability).
func (s *Space[T]) IgnoreUnknown() bool {
	return s.ignoreUnknown.Load()
}

// SetIgnoreUnknown replaces the membership mode unconditionally. It takes
// effect for all subsequent queries and has no effect on already-returned
// results.
func (s *Space[T]) SetIgnoreUnknown(mode bool) {
	s.ignoreUnknown.Store(mode)
}
