package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// Rat type is a representation of an exact fraction of two integers.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational is always kept in lowest terms: the denominator is positive
// and shares no common factor with the numerator.
// Hence two rationals are equal if and only if their numerators and
// denominators are equal.
type Rat struct {
	num Int // the numerator, carries the sign
	den Int // the denominator, 0 is read as 1 so that the zero value is 0/1
}

// float64Prec is the number of digits after the decimal point used by
// [Rat.Float64]: enough for the smallest subnormal float64 with all of its
// significant digits.
const float64Prec = 308 + 15

// newRatReduced returns num/den in lowest terms.
// newRatReduced assumes that den is positive.
func newRatReduced(num, den Int) Rat {
	g := GCD(num, den)
	if !g.IsOne() && !g.IsZero() {
		num, _ = num.Quo(g)
		den, _ = den.Quo(g)
	}
	return Rat{num: num, den: den}
}

// NewRatFromInt returns a rational equal to num/den in lowest terms.
// A negative denominator moves its sign to the numerator.
//
// NewRatFromInt returns an error if den is 0.
func NewRatFromInt(num, den Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, fmt.Errorf("computing [%v/%v]: %w", num, den, errDivisionByZero)
	}
	if den.IsNeg() {
		num, den = num.Neg(), den.Neg()
	}
	return newRatReduced(num, den), nil
}

// NewRat returns a rational equal to num/den in lowest terms.
//
// NewRat returns an error if den is 0.
func NewRat(num, den int64) (Rat, error) {
	return NewRatFromInt(NewInt(num), NewInt(den))
}

// MustNewRat is like [NewRat] but panics if the denominator is 0.
func MustNewRat(num, den int64) Rat {
	r, err := NewRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// IntRat returns a rational equal to the integer d.
func IntRat(d Int) Rat {
	return Rat{num: d}
}

// Num returns the numerator of r.
// The numerator carries the sign of the rational.
func (r Rat) Num() Int {
	return r.num
}

// Denom returns the denominator of r, which is always positive.
func (r Rat) Denom() Int {
	if r.den.IsZero() {
		return Int{limbs: natOne}
	}
	return r.den
}

// ParseRat converts a string to a rational.
// The input string must be in one of the following formats:
//
//	-12
//	3/4
//	-6/8
//	3.250
//	.5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer        ::= [sign] digits
//	fraction       ::= integer '/' integer
//	decimal        ::= [sign] (digits '.' [digits] | '.' digits)
//	numeric-string ::= integer | fraction | decimal
//
// The result is always reduced, for example "3.250" is parsed as 13/4.
//
// ParseRat returns an error if the string is malformed or the denominator is 0.
func ParseRat(s string) (Rat, error) {

	// Fraction
	if pos := strings.IndexByte(s, '/'); pos >= 0 {
		num, err := Parse(s[:pos])
		if err != nil {
			return Rat{}, fmt.Errorf("numerator: %w", err)
		}
		den, err := Parse(s[pos+1:])
		if err != nil {
			return Rat{}, fmt.Errorf("denominator: %w", err)
		}
		return NewRatFromInt(num, den)
	}

	// Decimal
	if pos := strings.IndexByte(s, '.'); pos >= 0 {
		whole, frac := s[:pos], s[pos+1:]
		if strings.HasPrefix(frac, "-") {
			return Rat{}, fmt.Errorf("invalid character '-': %w", errInvalidNumber)
		}
		num, err := Parse(whole + frac)
		if err != nil {
			return Rat{}, err
		}
		den := Int{limbs: natOne.mulPow10(len(frac))}
		return newRatReduced(num, den), nil
	}

	// Integer
	num, err := Parse(s)
	if err != nil {
		return Rat{}, err
	}
	return IntRat(num), nil
}

// MustParseRat is like [ParseRat] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParseRat(s string) Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRat(%q) failed: %v", s, err))
	}
	return r
}

// String method implements the [fmt.Stringer] interface and returns
// the numerator followed by "/" and the denominator.
// If the rational is an integer, only the numerator is returned.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.Denom().String()
}

// Decimal returns r as a fixed-point decimal string with prec digits after
// the decimal point.
// The digit following the last kept one is rounded half away from zero,
// so 2/3 with prec 2 is "0.67" and -2/3 is "-0.67".
// A negative prec is treated as 0.
func (r Rat) Decimal(prec int) string {
	if prec < 0 {
		prec = 0
	}

	// Scaled quotient with one extra digit
	scaled := r.num.mag().mulPow10(prec + 1)
	coef, _ := quoRemNat(scaled, r.Denom().mag())

	// Rounding
	coef, digit := quoLimb(coef, 10)
	if digit >= 5 {
		coef = addNat(coef, natOne)
	}

	// Decimal point
	text := coef.digits()
	switch {
	case len(text) <= prec:
		text = "0." + strings.Repeat("0", prec-len(text)) + text
	case prec > 0:
		text = text[:len(text)-prec] + "." + text[len(text)-prec:]
	}

	// Sign
	if r.num.IsNeg() && !coef.isZero() {
		text = "-" + text
	}

	return text
}

// Float64 returns the nearest float64 value for r.
// The value is rendered with [Rat.Decimal] and parsed back, so it never
// depends on the binary layout of float64.
// If r is outside the range of float64, ok is false and the result is ±Inf.
func (r Rat) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(r.Decimal(float64Prec), 64)
	if err != nil {
		return f, false
	}
	return f, true
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseRat].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rat) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRat(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rat.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Scan implements the [fmt.Scanner] interface.
// It reads a single whitespace-delimited token and parses it with [ParseRat].
// Verbs 's' and 'v' are supported.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (r *Rat) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 's', 'v':
	default:
		return fmt.Errorf("bad verb '%%%c' for %T", verb, r)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s, err := ParseRat(string(tok))
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -7/4
//	%q:    "-7/4"
//	%f:     -1.750000
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb, the default precision is 6.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rat) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'q':
		writePadded(state, verb, r.IsNeg(), r.Abs().String())
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		text := r.Decimal(prec)
		neg := strings.HasPrefix(text, "-")
		writePadded(state, verb, neg, strings.TrimPrefix(text, "-"))
	default:
		writeBadVerb(state, verb, r, r.String())
	}
}

// Neg returns r with opposite sign.
func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.den}
}

// Abs returns absolute value of r.
func (r Rat) Abs() Rat {
	return Rat{num: r.num.Abs(), den: r.den}
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsZero returns true if r == 0.
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// IsNeg returns true if r < 0.
func (r Rat) IsNeg() bool {
	return r.num.IsNeg()
}

// IsPos returns true if r > 0.
func (r Rat) IsPos() bool {
	return r.num.IsPos()
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.IsZero() || r.Denom().IsOne()
}

// Add returns the sum of r and s.
func (r Rat) Add(s Rat) Rat {
	num := r.num.Mul(s.Denom()).Add(r.Denom().Mul(s.num))
	den := r.Denom().Mul(s.Denom())
	return newRatReduced(num, den)
}

// Sub returns the difference of r and s.
func (r Rat) Sub(s Rat) Rat {
	num := r.num.Mul(s.Denom()).Sub(r.Denom().Mul(s.num))
	den := r.Denom().Mul(s.Denom())
	return newRatReduced(num, den)
}

// Mul returns the product of r and s.
func (r Rat) Mul(s Rat) Rat {
	num := r.num.Mul(s.num)
	den := r.Denom().Mul(s.Denom())
	return newRatReduced(num, den)
}

// Quo returns the quotient of r and s.
//
// Quo returns an error if s is 0.
func (r Rat) Quo(s Rat) (Rat, error) {
	if s.IsZero() {
		return Rat{}, fmt.Errorf("computing [%v / %v]: %w", r, s, errDivisionByZero)
	}
	return NewRatFromInt(r.num.Mul(s.Denom()), r.Denom().Mul(s.num))
}

// Inv returns the reciprocal of r.
//
// Inv returns an error if r is 0.
func (r Rat) Inv() (Rat, error) {
	if r.IsZero() {
		return Rat{}, fmt.Errorf("inverting %v: %w", r, errDivisionByZero)
	}
	return NewRatFromInt(r.Denom(), r.num)
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
func (r Rat) Cmp(s Rat) int {
	return r.num.Mul(s.Denom()).Cmp(s.num.Mul(r.Denom()))
}

// Equal returns true if r == s.
func (r Rat) Equal(s Rat) bool {
	return r.num.Equal(s.num) && r.Denom().Equal(s.Denom())
}

// Less returns true if r < s.
func (r Rat) Less(s Rat) bool {
	return r.Cmp(s) < 0
}

// Max returns maximum of r and s.
func (r Rat) Max(s Rat) Rat {
	if r.Cmp(s) >= 0 {
		return r
	}
	return s
}

// Min returns minimum of r and s.
func (r Rat) Min(s Rat) Rat {
	if r.Cmp(s) <= 0 {
		return r
	}
	return s
}

// Trunc returns the integer part of r, truncated towards zero.
func (r Rat) Trunc() Int {
	q, _ := r.num.Quo(r.Denom())
	return q
}
