package treeval

import "errors"

// Error kinds reported by this package. All failures are immediate and
// final for the current call: no partial results are produced and
// nothing is retried. Match with errors.Is.
var (
	// ErrTypeMismatch reports a type-specific entry point (HashArray,
	// HashObject, the As* accessors) called on the wrong variant.
	ErrTypeMismatch = errors.New("treeval: type mismatch")

	// ErrIncomparableTypes reports a min/max comparison across values
	// that are not both numeric or both strings.
	ErrIncomparableTypes = errors.New("treeval: incomparable types")

	// ErrInvalidValueType reports a value whose shape or variant is not
	// supported by the operation (an unknown kind under Hash, or a
	// non-array where Flatten expects to iterate one).
	ErrInvalidValueType = errors.New("treeval: invalid value type")
)
