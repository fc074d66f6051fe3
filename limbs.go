package bigint

// nat is the magnitude of an integer stored as base 10^9 limbs,
// least significant limb first.
// A canonical nat has no trailing zero limbs, except for zero itself,
// which is exactly one limb holding 0.
type nat []uint32

const (
	limbBase   = 1_000_000_000 // 10^limbDigits
	limbDigits = 9             // decimal digits per limb
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// natZero is the canonical zero. It is shared and must never be modified.
var natZero = nat{0}

// natOne is the canonical one. It is shared and must never be modified.
var natOne = nat{1}

// natFromUint64 splits x into limbs.
func natFromUint64(x uint64) nat {
	if x == 0 {
		return natZero
	}
	z := make(nat, 0, 3)
	for x > 0 {
		z = append(z, uint32(x%limbBase))
		x /= limbBase
	}
	return z
}

// norm (shrink) drops trailing zero limbs while more than one limb remains.
// An empty nat is normalized to zero.
func (x nat) norm() nat {
	if len(x) == 0 {
		return natZero
	}
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// cmp compares magnitudes of canonical x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x nat) cmp(y nat) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addNat calculates x + y.
func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		s := uint64(x[i]) + carry
		if i < len(y) {
			s += uint64(y[i])
		}
		z[i] = uint32(s % limbBase)
		carry = s / limbBase
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// subNat calculates x - y.
// subNat assumes that x >= y, otherwise the result is undefined.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint32
	for i := range x {
		d := borrow
		if i < len(y) {
			d += y[i]
		}
		if x[i] < d {
			z[i] = x[i] + limbBase - d
			borrow = 1
		} else {
			z[i] = x[i] - d
			borrow = 0
		}
	}
	return z.norm()
}

// mulLimb calculates x * m for a single limb m < limbBase.
// The product of two limbs plus a carry stays below 10^18 + 10^9,
// so the uint64 accumulator never overflows.
func mulLimb(x nat, m uint32) nat {
	if m == 0 || x.isZero() {
		return natZero
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		p := uint64(xi)*uint64(m) + carry
		z[i] = uint32(p % limbBase)
		carry = p / limbBase
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// shift calculates x * limbBase^places by prepending zero limbs.
// Zero is never shifted.
func (x nat) shift(places int) nat {
	if places <= 0 || x.isZero() {
		return x
	}
	z := make(nat, places+len(x))
	copy(z[places:], x)
	return z
}

// mulNat calculates x * y with the schoolbook method: every limb of y
// multiplies x, is shifted to its position, and is added to the sum.
func mulNat(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return natZero
	}
	z := natZero
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		z = addNat(z, mulLimb(x, yj).shift(j))
	}
	return z
}

// mulPow10 calculates x * 10^n.
func (x nat) mulPow10(n int) nat {
	if n <= 0 || x.isZero() {
		return x
	}
	z := x.shift(n / limbDigits)
	if r := n % limbDigits; r > 0 {
		z = mulLimb(z, pow10[r])
	}
	return z
}

// quoRemNat calculates q = ⌊x / y⌋ and r = x - y * q using long division.
// The dividend is consumed one limb at a time, most significant first.
// For every position the quotient limb is the largest q in [0, limbBase)
// with y * q <= running remainder, found by binary search.
// quoRemNat assumes that y is not zero.
func quoRemNat(x, y nat) (q, r nat) {
	x, y = x.norm(), y.norm()
	if x.cmp(y) < 0 {
		return natZero, x
	}
	q = make(nat, len(x))
	r = natZero
	for i := len(x) - 1; i >= 0; i-- {
		// Bring down the next limb
		r = addNat(r.shift(1), nat{x[i]})

		// Quotient limb
		lo, hi := uint32(0), uint32(limbBase)
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			if mulLimb(y, mid).cmp(r) <= 0 {
				lo = mid
			} else {
				hi = mid
			}
		}
		q[i] = lo
		if lo > 0 {
			r = subNat(r, mulLimb(y, lo))
		}
	}
	return q.norm(), r
}

// quoLimb calculates q = ⌊x / m⌋ and r = x - m * q for a single limb m.
// quoLimb assumes that 0 < m < limbBase.
func quoLimb(x nat, m uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(x[i])
		q[i] = uint32(cur / uint64(m))
		rem = cur % uint64(m)
	}
	return q.norm(), uint32(rem)
}

// prec returns length of x in decimal digits.
// Unlike the text representation, prec assumes that 0 has no digits.
func (x nat) prec() int {
	x = x.norm()
	if x.isZero() {
		return 0
	}
	top := x[len(x)-1]
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if top < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return (len(x)-1)*limbDigits + left
}

// digits returns the decimal text of x without a sign.
// All limbs except the most significant one are zero-padded to limbDigits.
func (x nat) digits() string {
	x = x.norm()
	buf := make([]byte, len(x)*limbDigits)
	pos := len(buf)
	for i, l := range x {
		top := i == len(x)-1
		for n := 0; n < limbDigits; n++ {
			if top && n > 0 && l == 0 {
				break
			}
			pos--
			buf[pos] = byte(l%10) + '0'
			l /= 10
		}
	}
	return string(buf[pos:])
}

// parseNat converts a string of ASCII digits into limbs.
// The digits are split into limbDigits-wide chunks starting from the
// least significant end.
// parseNat assumes that s is not empty and contains only digits.
func parseNat(s string) nat {
	z := make(nat, (len(s)+limbDigits-1)/limbDigits)
	for i := range z {
		hi := len(s) - i*limbDigits
		lo := max(hi-limbDigits, 0)
		var l uint32
		for pos := lo; pos < hi; pos++ {
			l = l*10 + uint32(s[pos]-'0')
		}
		z[i] = l
	}
	return z.norm()
}
