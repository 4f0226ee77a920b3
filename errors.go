package precision

import "errors"

var (
	// ErrInvalidScale is returned when a type is requested with a negative scale,
	// or with a scale the variant cannot represent.
	ErrInvalidScale = errors.New("precision must be a positive integer")

	// ErrScaleMismatch is returned when two values of different scales are
	// compared or combined.
	ErrScaleMismatch = errors.New("scale mismatch")

	// ErrInvalidLiteral is returned when a string or float cannot be converted
	// to a decimal value.
	ErrInvalidLiteral = errors.New("invalid decimal literal")

	// ErrOverflow is returned when a value does not fit into a bounded
	// representation.
	ErrOverflow = errors.New("coefficient overflow")
)
