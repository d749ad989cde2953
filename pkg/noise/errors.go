package noise

import "errors"

var (
	ErrUnknownNoiseType  = errors.New("noise: unknown noise type")
	ErrNoMatrix          = errors.New("noise: noise type has no transition matrix")
	ErrInvalidClassCount = errors.New("noise: class count must be at least 2")
	ErrInvalidRate       = errors.New("noise: noise rate must be within [0, 1]")

	// Transition matrix preconditions.
	ErrNonSquare     = errors.New("noise: transition matrix is not square")
	ErrNegativeEntry = errors.New("noise: transition matrix has a negative entry")
	ErrNaNInf        = errors.New("noise: transition matrix has a NaN or Inf entry")
	ErrRowSum        = errors.New("noise: transition matrix row does not sum to 1")

	// Label vector preconditions.
	ErrNoLabels        = errors.New("noise: empty label vector")
	ErrLabelOutOfRange = errors.New("noise: label outside [0, classes)")

	// ErrNoNoiseApplied is the sanity-check failure for a positive noise rate
	// that left every label untouched.
	ErrNoNoiseApplied = errors.New("noise: no label was changed")
	ErrNoLoader       = errors.New("noise: no external noise loader configured")
)
