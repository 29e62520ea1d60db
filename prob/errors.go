package prob

import (
	"errors"
	"fmt"
)

// Sentinel errors for probability space operations.
// All are matched via errors.Is; ErrNegativeProbability and
// ErrProbabilitySum additionally match ErrInvalidDistribution.
var (
	// ErrInvalidDistribution indicates the constructor rejected the mapping.
	ErrInvalidDistribution = errors.New("prob: invalid probability distribution")

	// ErrNegativeProbability indicates a negative probability value in the mapping.
	ErrNegativeProbability = fmt.Errorf("%w: probabilities must be nonnegative", ErrInvalidDistribution)

	// ErrProbabilitySum indicates the probabilities do not sum to 1 within Epsilon.
	ErrProbabilitySum = fmt.Errorf("%w: probabilities must sum to 1", ErrInvalidDistribution)

	// ErrUnknownOutcome indicates an event referenced an outcome outside the
	// sample space while in strict mode.
	ErrUnknownOutcome = errors.New("prob: event contains outcome not in sample space")

	// ErrZeroCondition indicates a conditional probability P(A|B) was requested
	// with a conditioning event B such that P(B) = 0.
	ErrZeroCondition = errors.New("prob: conditioning event has probability zero")
)
