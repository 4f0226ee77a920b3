/*
Package precision implements fixed-point decimal types for monetary values,
where binary floating-point drift is unacceptable.
A type is created for a given scale, the number of digits after the decimal
point, and every value of that type carries exactly that many digits.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Types parametrized by scale at runtime, from 0 up to any size
  - Exact addition, negation and comparison of values of the same scale
  - Half-up rounding of literals with more digits than the scale
  - Conversion to and from [decimal.Decimal], [shopspring.Decimal] and
    [uint256.Int] base units

# Representation

The package provides two variants with the same set of operations.

[Exact] produces [Decimal] values backed by an arbitrary-precision integer
n, so that the value equals n / 10^scale.
There is no limit on the number of digits.

[Bounded] produces [Fixed] values backed by a [decimal.Decimal] whose
coefficient is limited to 19 digits.
Bounded values are created from float64 and are faster, but inherit the
rounding error of the float they were created from.

# Operations

Values support the operations of an ordered abelian group:

  - Equal and Lte (setoid and total order)
  - Concat and Sub (semigroup)
  - Empty (monoid identity)
  - Invert (group inverse)

Values of different scales cannot be compared or combined; such calls
return [ErrScaleMismatch].
Multiplication and division are not supported.

# Rounding

[Exact.Parse] keeps the first scale digits after the decimal point and adds
one unit in the last place if the first discarded digit is 5 or greater.
Only that digit is inspected: "0.14999" becomes 0.1 at scale 1.

[Bounded.New] multiplies the float by 10^scale and rounds half away from zero.

# Errors

Factories return [ErrInvalidScale] for a negative scale.
Parsing returns [ErrInvalidLiteral] for a malformed string.
Bounded values return [ErrOverflow] when the result does not fit into the
coefficient.
All errors are wrapped with context and can be matched with [errors.Is].
*/
package precision
