package bigint

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: a sequence of base 10^9 limbs, least significant limb first.
//
// Every method returns a new value and never modifies the receiver or the
// arguments, so an Int can be copied and shared freely.
// Negative zero does not exist: zero is always reported as non-negative.
type Int struct {
	neg   bool // indicates whether the integer is negative
	limbs nat  // the magnitude of the integer
}

var (
	errInvalidNumber  = errors.New("invalid number")
	errDivisionByZero = errors.New("division by zero")
)

var (
	// ErrSyntax is wrapped by every parsing error.
	ErrSyntax = errInvalidNumber
	// ErrDivisionByZero is returned when the divisor or the denominator is 0.
	ErrDivisionByZero = errDivisionByZero
)

func newInt(neg bool, mag nat) Int {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, limbs: mag}
}

// NewInt returns an integer equal to x.
func NewInt(x int64) Int {
	if x >= 0 {
		return Int{limbs: natFromUint64(uint64(x))}
	}
	u := uint64(-(x + 1)) + 1 // avoids overflow for math.MinInt64
	return Int{neg: true, limbs: natFromUint64(u)}
}

// NewIntFromUint64 returns an integer equal to x.
func NewIntFromUint64(x uint64) Int {
	return Int{limbs: natFromUint64(x)}
}

// mag returns the magnitude of d.
// The magnitude of the zero value is the canonical zero.
func (d Int) mag() nat {
	if len(d.limbs) == 0 {
		return natZero
	}
	return d.limbs
}

// Parse converts a string to an integer.
// The input string must be in the following format:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros. "-0" is parsed as 0.
//
// Parse returns an error if the string is empty, consists of a lone sign,
// or contains a character other than a digit after the optional sign.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Digits
	if pos == width {
		return Int{}, fmt.Errorf("no digits: %w", errInvalidNumber)
	}
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, fmt.Errorf("invalid character %q: %w", s[i], errInvalidNumber)
		}
	}

	return newInt(neg, parseNat(s[pos:])), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical decimal representation of an integer:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Zero is rendered as "0" without a sign.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Int) String() string {
	if d.IsNeg() {
		return "-" + d.mag().digits()
	}
	return d.mag().digits()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Int) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Int) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [fmt.Scanner] interface.
// It reads a single whitespace-delimited token and parses it with [Parse].
// Verbs 'd', 's' and 'v' are supported.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (d *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bad verb '%%%c' for %T", verb, d)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	e, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Int) Format(state fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v', 'q':
		writePadded(state, verb, d.IsNeg(), d.mag().digits())
	default:
		writeBadVerb(state, verb, d, d.String())
	}
}

// Int64 returns the integer as an int64.
// If the integer cannot be represented as an int64, ok is false.
func (d Int) Int64() (int64, bool) {
	u, ok := d.Abs().Uint64()
	if !ok {
		return 0, false
	}
	if d.IsNeg() && u == 1<<63 {
		return math.MinInt64, true
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, false
	}
	if d.IsNeg() {
		v = -v
	}
	return v, true
}

// Uint64 returns the integer as a uint64.
// If the integer is negative or does not fit, ok is false.
func (d Int) Uint64() (u uint64, ok bool) {
	if d.IsNeg() {
		return 0, false
	}
	mag := d.mag()
	for i := len(mag) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(mag[i]))/limbBase {
			return 0, false
		}
		u = u*limbBase + uint64(mag[i])
	}
	return u, true
}

// Float64 returns the nearest float64 value for d.
// If the integer is outside the range of float64, ok is false
// and the result is ±Inf.
func (d Int) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return f, false
	}
	return f, true
}

// Prec returns number of decimal digits in the magnitude.
// Prec assumes that 0 has no digits.
func (d Int) Prec() int {
	return d.mag().prec()
}

// Neg returns d with opposite sign.
// The negation of zero is zero.
func (d Int) Neg() Int {
	return newInt(!d.neg, d.mag())
}

// Abs returns absolute value of d.
func (d Int) Abs() Int {
	return newInt(false, d.mag())
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Int) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if d == 0.
func (d Int) IsZero() bool {
	return d.mag().isZero()
}

// IsNeg returns true if d < 0.
func (d Int) IsNeg() bool {
	return d.neg && !d.IsZero()
}

// IsPos returns true if d > 0.
func (d Int) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsOdd returns true if d is not divisible by 2.
func (d Int) IsOdd() bool {
	return d.mag()[0]&1 != 0
}

// IsOne returns true if d == -1 or d == 1.
func (d Int) IsOne() bool {
	return d.mag().cmp(natOne) == 0
}

// Add returns the sum of d and e.
func (d Int) Add(e Int) Int {
	dmag, emag := d.mag(), e.mag()

	// Same signs
	if d.IsNeg() == e.IsNeg() {
		return newInt(d.IsNeg(), addNat(dmag, emag))
	}

	// Different signs
	if dmag.cmp(emag) < 0 {
		return newInt(e.IsNeg(), subNat(emag, dmag))
	}
	return newInt(d.IsNeg(), subNat(dmag, emag))
}

// Sub returns the difference of d and e.
// It is computed as -(-d + e), so subtraction shares the code path and
// the canonicalization of [Int.Add].
func (d Int) Sub(e Int) Int {
	return d.Neg().Add(e).Neg()
}

// Inc returns d + 1.
func (d Int) Inc() Int {
	return d.Add(Int{limbs: natOne})
}

// Dec returns d - 1.
func (d Int) Dec() Int {
	return d.Sub(Int{limbs: natOne})
}

// Mul returns the product of d and e.
func (d Int) Mul(e Int) Int {
	return newInt(d.IsNeg() != e.IsNeg(), mulNat(d.mag(), e.mag()))
}

// MulInt64 returns the product of d and a machine integer.
func (d Int) MulInt64(x int64) Int {
	return d.Mul(NewInt(x))
}

// Quo returns the quotient of d and e truncated towards zero.
//
// Quo returns an error if e is 0.
func (d Int) Quo(e Int) (Int, error) {
	q, _, err := d.QuoRem(e)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder d - (d / e) * e, where the quotient is truncated
// towards zero.
// A non-zero remainder always has the sign of the dividend d,
// for example -7 % 3 == -1 and 7 % -3 == 1.
//
// Rem returns an error if e is 0.
func (d Int) Rem(e Int) (Int, error) {
	_, r, err := d.QuoRem(e)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// QuoRem returns the quotient q and remainder r of d and e
// such that d = q * e + r, q is truncated towards zero,
// and r has the sign of d.
//
// QuoRem returns an error if e is 0.
func (d Int) QuoRem(e Int) (q, r Int, err error) {
	if e.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", d, e, errDivisionByZero)
	}
	qmag, rmag := quoRemNat(d.mag(), e.mag())
	q = newInt(d.IsNeg() != e.IsNeg(), qmag)
	r = newInt(d.IsNeg(), rmag)
	return q, r, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Int) Cmp(e Int) int {
	switch {
	case d.IsZero() && e.IsZero():
		return 0
	case d.IsNeg() != e.IsNeg():
		if d.IsNeg() {
			return -1
		}
		return 1
	case d.IsNeg():
		return -d.mag().cmp(e.mag())
	default:
		return d.mag().cmp(e.mag())
	}
}

// CmpAbs compares |d| and |e| and returns -1, 0 or +1.
func (d Int) CmpAbs(e Int) int {
	return d.mag().cmp(e.mag())
}

// Equal returns true if d == e.
func (d Int) Equal(e Int) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Int) Less(e Int) bool {
	return d.Cmp(e) < 0
}

// Max returns maximum of d and e.
func (d Int) Max(e Int) Int {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Int) Min(e Int) Int {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// GCD returns the greatest common divisor of |a| and |b| computed with
// the Euclidean algorithm.
// The result is never negative, and GCD(0, 0) is 0.
func GCD(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		r, err := a.Rem(b)
		if err != nil {
			panic(fmt.Sprintf("GCD(%v, %v) failed: %v", a, b, err)) // b is not zero here
		}
		a, b = b, r
	}
	return a
}
