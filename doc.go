/*
Package bigint implements immutable arbitrary-precision integers and exact
rational numbers.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of limbs in base 10^9, least significant limb first.
    Each limb holds a value from 0 to 999,999,999.

The representation is canonical: the magnitude never has leading zero limbs,
zero is exactly one limb holding 0, and zero is never negative.
For example, 1,000,000,000 is stored as the limbs [0, 1].

[Rat] is a struct with two integers, a numerator and a denominator.
The rational is always reduced: the denominator is positive and
the greatest common divisor of the numerator and the denominator is 1.
For example, 6/-8 is stored as -3/4.

The zero values of both types are valid and equal to 0.

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [Int.String], [Int.Format], [ParseRat], [Rat.String],
    [Rat.Decimal], [Rat.Format].
  - from/to int64:
    [NewInt], [Int.Int64], [NewRat].
  - to float64:
    [Int.Float64], [Rat.Float64].
  - from/to text streams:
    [Int.Scan] and [Rat.Scan] implement [fmt.Scanner] and read a single
    whitespace-delimited token.
  - from/to encodings:
    [encoding.TextMarshaler], [encoding.TextUnmarshaler], msgpack,
    [database/sql/driver.Valuer], and [database/sql.Scanner] through [NullInt] and [NullRat].

Decimal text is the only serialization format.

# Operations

Addition and subtraction use schoolbook carry and borrow propagation.
Subtraction is addition of the negated operand, so both share the same
canonicalization.

Multiplication is the schoolbook method: every limb of the right operand
multiplies the left operand, is shifted to its position and is accumulated.
Its cost is O(n·m) in the number of limbs.

Division is long division one limb at a time.
Every quotient limb is found by binary search over [0, 10^9), so the cost is
O(n·m·log(10^9)) and no quotient digit is ever estimated.

The rational operations cross-multiply and reduce the result with [GCD].

# Rounding

[Int.Quo] truncates towards zero.
[Int.Rem] is d - (d / e) * e, so a non-zero remainder has the sign of the
dividend: -7 % 3 is -1 and 7 % -3 is 1.
This differs from Euclidean modulo.

[Rat.Decimal] rounds half away from zero: 2/3 with 2 digits is 0.67 and
-2/3 is -0.67.

# Errors

Arithmetic never overflows: limb products are computed in uint64, which
holds a product of two limbs plus a carry.

Errors are returned in the following cases:

  - Division by Zero.
    [Int.Quo], [Int.Rem], [Int.QuoRem], [Rat.Quo], [Rat.Inv], [NewRat] and
    [NewRatFromInt] return an error wrapping [ErrDivisionByZero].

  - Invalid Syntax.
    [Parse] and [ParseRat] return an error wrapping [ErrSyntax] for
    an empty string, a lone sign, or a character other than a digit.

The Must variants, such as [MustParse] and [Int.MustQuo], panic instead.

# Concurrency

Values are never modified after construction, so they can be shared between
goroutines without synchronization.
*/
package bigint
