// Package distmat: sentinel error set.
//
// This file defines ONLY package-level sentinel errors used across the
// distmat package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.
//
// Every specific sentinel wraps ErrInvalidInput, so callers may match either
// the precise condition (errors.Is(err, ErrNegativeDistance)) or the whole
// malformed-input class (errors.Is(err, ErrInvalidInput)).
package distmat

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base class for every malformed-model condition.
// It is fatal: a Matrix is either fully valid after construction or never exists.
var ErrInvalidInput = errors.New("distmat: invalid input")

var (
	// ErrEmpty is returned when the input holds no cities at all.
	ErrEmpty = fmt.Errorf("%w: empty matrix", ErrInvalidInput)

	// ErrNonSquare is returned when some row length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrNegativeDistance is returned when any entry is < 0.
	ErrNegativeDistance = fmt.Errorf("%w: negative distance", ErrInvalidInput)

	// ErrNonZeroDiagonal is returned when distance(i,i) != 0 for some i.
	ErrNonZeroDiagonal = fmt.Errorf("%w: non-zero diagonal", ErrInvalidInput)

	// ErrNotFinite is returned when any entry is NaN or ±Inf.
	ErrNotFinite = fmt.Errorf("%w: NaN or Inf distance", ErrInvalidInput)

	// ErrIndexOutOfRange is returned by At when a city index is outside [0..n-1].
	ErrIndexOutOfRange = fmt.Errorf("%w: city index out of range", ErrInvalidInput)
)
