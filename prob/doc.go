// Package prob models a finite discrete probability space: a validated
// mapping from mutually exclusive outcomes to probabilities summing to one,
// with event-algebra queries over subsets of those outcomes.
//
// 🚀 What is a probability space?
//
//	A Space[T] owns an immutable outcome→probability mapping and its derived
//	domain (the set of known outcomes).  Events are plain sets of outcomes,
//	built ad hoc per query.  The five queries are:
//	  • Probability(E)      — P(E) = Σ P({ω}) over ω ∈ E
//	  • Complement(E)       — P(Eᶜ) = 1 − P(E)
//	  • Union(A, B)         — P(A ∪ B)
//	  • Intersection(A, B)  — P(A ∩ B)
//	  • Conditional(A, B)   — P(A|B) = P(A∩B)/P(B), error when P(B) = 0
//
// ✨ Key features:
//   - construction validates nonnegativity and sum-to-one (±Epsilon)
//     before any space exists — invalid mappings never produce one
//   - copy-in semantics: mutating the source mapping never touches the space
//   - strict mode (default): events referencing outcomes outside the domain
//     fail with ErrUnknownOutcome on every query
//   - lenient mode (SetIgnoreUnknown(true)): unknown outcomes are tolerated
//     and contribute zero probability
//   - sentinel errors matched via errors.Is — no panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/probspace/prob"
//
//	coin, err := prob.New(map[string]float64{"heads": 0.5, "tails": 0.5})
//	if err != nil {
//	  // ErrInvalidDistribution: negative value or bad total
//	}
//
//	p, err := coin.Probability(prob.NewEvent("heads")) // 0.5, nil
//	c, err := coin.Conditional(
//	  prob.NewEvent("heads"),
//	  prob.NewEvent("heads", "tails"),
//	) // 0.5, nil
//
// Concurrency:
//
//	The mapping and domain are immutable after construction, so concurrent
//	queries need no synchronization.  The strict/lenient flag is atomic;
//	toggling it alongside queries is race-free, though each query reads the
//	flag once at entry.
//
// Performance:
//
//   - Time:   O(|event|) per query (O(|A|+|B|) for the binary ones)
//   - Memory: O(|domain|) per space, O(|A|+|B|) transient for set algebra
//
// See example_test.go and the repository's examples/ directory for complete
// scenarios.
package prob
