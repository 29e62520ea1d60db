// Package probspace is your in-memory toolkit for exact, finite
// probability — build a discrete sample space once, then query events
// against it with clean set algebra.
//
// 🚀 What is probspace?
//
//	A small, dependency-free library that brings together:
//		• Validated construction: outcome→probability mappings checked for
//		  nonnegativity and sum-to-one (±1e-9) before a space ever exists
//		• Event algebra: P(E), complement, union, intersection, P(A|B)
//		• Strict/lenient membership: reject unknown outcomes, or let them
//		  contribute zero — your call, switchable at any time
//		• Generic outcomes: coins, dice, strings, any ordered comparable type
//
// ✨ Why choose probspace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable spaces, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Exact – finite enumeration only, no sampling, no approximation
//
// Everything lives in one subpackage:
//
//	prob/ — the Space and Event types, validation, and the five queries
//
// Quick ASCII example:
//
//	    {heads: 0.5, tails: 0.5}
//	         │
//	    P({heads}) = 0.5    P({heads}ᶜ) = 0.5    P(all) = 1
//
// Dive into prob/example_test.go and the examples/ directory for runnable
// scenarios, from coin tosses to conditional dice odds.
//
//	go get github.com/katalvlaran/probspace/prob
package probspace
