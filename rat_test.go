package bigint

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestRat_ZeroValue(t *testing.T) {
	got := Rat{}
	want := MustNewRat(0, 1)
	if !got.Equal(want) {
		t.Errorf("Rat{} = %q, want %q", got, want)
	}
	if s := got.String(); s != "0" {
		t.Errorf("Rat{}.String() = %q, want %q", s, "0")
	}
	if d := got.Denom(); d.String() != "1" {
		t.Errorf("Rat{}.Denom() = %q, want %q", d, "1")
	}
}

// checkReduced reports whether r is kept in lowest terms with a positive
// denominator.
func checkReduced(t *testing.T, r Rat) {
	t.Helper()
	num, den := r.Num(), r.Denom()
	if !den.IsPos() {
		t.Errorf("%q has non-positive denominator %q", r, den)
	}
	if g := GCD(num, den); !g.IsOne() && !num.IsZero() {
		t.Errorf("%q is not reduced, gcd = %q", r, g)
	}
	if num.IsZero() && !den.IsOne() {
		t.Errorf("%q has zero numerator and denominator %q", r, den)
	}
}

func TestNewRat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den int64
			want     string
		}{
			{0, 1, "0"},
			{0, -5, "0"},
			{1, 3, "1/3"},
			{6, 8, "3/4"},
			{6, -8, "-3/4"},
			{-6, -8, "3/4"},
			{-6, 8, "-3/4"},
			{10, 5, "2"},
			{-10, 5, "-2"},
			{math.MinInt64, -1, "9223372036854775808"},
			{1, math.MinInt64, "-1/9223372036854775808"},
		}
		for _, tt := range tests {
			got, err := NewRat(tt.num, tt.den)
			if err != nil {
				t.Errorf("NewRat(%v, %v) failed: %v", tt.num, tt.den, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewRat(%v, %v) = %q, want %q", tt.num, tt.den, got, tt.want)
			}
			checkReduced(t, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int64{0, 1, -1}
		for _, num := range tests {
			_, err := NewRat(num, 0)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("NewRat(%v, 0) = %v, want %v", num, err, ErrDivisionByZero)
			}
		}
		_, err := NewRatFromInt(NewInt(1), Int{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("NewRatFromInt(1, 0) = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestMustNewRat(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewRat(1, 0) did not panic")
			}
		}()
		MustNewRat(1, 0)
	})
}

func TestParseRat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"-12", "-12"},
			{"3/4", "3/4"},
			{"-6/8", "-3/4"},
			{"6/-8", "-3/4"},
			{"-6/-8", "3/4"},
			{"0/-7", "0"},
			{"3.250", "13/4"},
			{"-3.250", "-13/4"},
			{".5", "1/2"},
			{"-.5", "-1/2"},
			{"5.", "5"},
			{"0.000", "0"},
			{"1.000000000000000000001", "1000000000000000000001/1000000000000000000000"},
			{"123456789012345678901234567890/10", "12345678901234567890123456789"},
		}
		for _, tt := range tests {
			got, err := ParseRat(tt.s)
			if err != nil {
				t.Errorf("ParseRat(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseRat(%q) = %q, want %q", tt.s, got, tt.want)
			}
			checkReduced(t, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":          {"", ErrSyntax},
			"point only":     {".", ErrSyntax},
			"sign only":      {"-", ErrSyntax},
			"sign point":     {"-.", ErrSyntax},
			"two points":     {"1.2.3", ErrSyntax},
			"signed frac":    {"1.-5", ErrSyntax},
			"empty num":      {"/3", ErrSyntax},
			"empty den":      {"3/", ErrSyntax},
			"two slashes":    {"1/2/3", ErrSyntax},
			"decimal den":    {"1/2.5", ErrSyntax},
			"letter":         {"1/x", ErrSyntax},
			"plus sign":      {"+1/2", ErrSyntax},
			"zero den":       {"1/0", ErrDivisionByZero},
			"zero zero":      {"0/0", ErrDivisionByZero},
			"neg zero den":   {"5/-0", ErrDivisionByZero},
			"spaces":         {"1 / 2", ErrSyntax},
			"exponent":       {"1e3", ErrSyntax},
			"trailing space": {"1.5 ", ErrSyntax},
		}
		for name, tt := range tests {
			_, err := ParseRat(tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: ParseRat(%q) = %v, want %v", name, tt.s, err, tt.want)
			}
		}
	})
}

func TestMustParseRat(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRat(\"1/0\") did not panic")
			}
		}()
		MustParseRat("1/0")
	})
}

func TestRat_String(t *testing.T) {
	tests := []struct {
		r    Rat
		want string
	}{
		{Rat{}, "0"},
		{IntRat(NewInt(-5)), "-5"},
		{MustNewRat(1, 2), "1/2"},
		{MustNewRat(-7, 4), "-7/4"},
		{MustNewRat(1000000000, 3), "1000000000/3"},
	}
	for _, tt := range tests {
		got := tt.r.String()
		if got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.r, got, tt.want)
		}
		back, err := ParseRat(got)
		if err != nil {
			t.Errorf("ParseRat(%q) failed: %v", got, err)
			continue
		}
		if !back.Equal(tt.r) {
			t.Errorf("ParseRat(%q) = %q, want %q", got, back, tt.r)
		}
	}
}

func TestRat_Decimal(t *testing.T) {
	tests := []struct {
		r    string
		prec int
		want string
	}{
		{"1/3", 4, "0.3333"},
		{"2/3", 2, "0.67"},
		{"-2/3", 2, "-0.67"},
		{"-1/3", 4, "-0.3333"},
		{"1/2", 0, "1"},
		{"-1/2", 0, "-1"},
		{"1/4", 1, "0.3"},
		{"-1/4", 1, "-0.3"},
		{"1/200", 2, "0.01"},
		{"1/1000", 2, "0.00"},
		{"-1/1000", 2, "0.00"},
		{"999/1000", 2, "1.00"},
		{"13/4", 3, "3.250"},
		{"-13/4", 1, "-3.3"},
		{"0", 2, "0.00"},
		{"0", 0, "0"},
		{"123", 0, "123"},
		{"-123", 2, "-123.00"},
		{"7/2", -1, "4"},
		{"1/7", 12, "0.142857142857"},
		{"1000000000/3", 10, "333333333.3333333333"},
		{"1/3", 20, "0.33333333333333333333"},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		got := r.Decimal(tt.prec)
		if got != tt.want {
			t.Errorf("%q.Decimal(%v) = %q, want %q", r, tt.prec, got, tt.want)
		}
	}
}

func TestRat_Float64(t *testing.T) {
	tests := []struct {
		r      string
		want   float64
		wantOk bool
	}{
		{"0", 0, true},
		{"1/3", 1.0 / 3, true},
		{"-1/2", -0.5, true},
		{"13/4", 3.25, true},
		{"1/1024", 1.0 / 1024, true},
		{"1" + strings.Repeat("0", 400), math.Inf(1), false},
		{"-1" + strings.Repeat("0", 400), math.Inf(-1), false},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		got, ok := r.Float64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%q.Float64() = (%v, %v), want (%v, %v)", r, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestRat_Format(t *testing.T) {
	tests := []struct {
		r, format, want string
	}{
		{"-7/4", "%v", "-7/4"},
		{"-7/4", "%s", "-7/4"},
		{"-7/4", "%q", "\"-7/4\""},
		{"7/4", "%+v", "+7/4"},
		{"7/4", "%6v", "   7/4"},
		{"7/4", "%-6v|", "7/4   |"},
		{"-7/4", "%f", "-1.750000"},
		{"-7/4", "%.2f", "-1.75"},
		{"1/3", "%8.3f", "   0.333"},
		{"1/3", "%08.3f", "0000.333"},
		{"-1/3", "%08.3f", "-000.333"},
		{"2/3", "%.0f", "1"},
		{"-1/1000", "%.2f", "0.00"},
		{"1/2", "%x", "%!x(bigint.Rat=1/2)"},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		got := fmt.Sprintf(tt.format, r)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, r, got, tt.want)
		}
	}
}

func TestRat_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var a, b, c Rat
		n, err := fmt.Sscan("1/3\t-0.5\n 7", &a, &b, &c)
		if err != nil {
			t.Fatalf("fmt.Sscan() failed: %v", err)
		}
		if n != 3 {
			t.Fatalf("fmt.Sscan() = %v, want %v", n, 3)
		}
		for i, tt := range []struct {
			got  Rat
			want string
		}{
			{a, "1/3"},
			{b, "-1/2"},
			{c, "7"},
		} {
			if tt.got.String() != tt.want {
				t.Errorf("fmt.Sscan() token %v = %q, want %q", i, tt.got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"1/0", "1/x", "."}
		for _, tt := range tests {
			var r Rat
			_, err := fmt.Sscan(tt, &r)
			if err == nil {
				t.Errorf("fmt.Sscan(%q) did not fail", tt)
			}
		}
	})
}

func TestRat_Msgpack(t *testing.T) {
	tests := []string{"0", "-1", "1/3", "-13/4", "1000000000000000000001/1000000000000000000000"}
	for _, tt := range tests {
		want := MustParseRat(tt)
		b, err := msgpack.Marshal(want)
		if err != nil {
			t.Errorf("msgpack.Marshal(%v) failed: %v", want, err)
			continue
		}
		var got Rat
		if err := msgpack.Unmarshal(b, &got); err != nil {
			t.Errorf("msgpack.Unmarshal(%v) failed: %v", want, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("msgpack round trip = %v, want %v", got, want)
		}
	}
}

func TestRat_Text(t *testing.T) {
	want := MustNewRat(-13, 4)
	b, err := want.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	var got Rat
	if err := got.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%s) failed: %v", b, err)
	}
	if !got.Equal(want) {
		t.Errorf("UnmarshalText(%s) = %v, want %v", b, got, want)
	}
}

func TestRat_Arithmetic(t *testing.T) {
	tests := []struct {
		r, s                string
		add, sub, mul, quo string
	}{
		{"1/3", "1/6", "1/2", "1/6", "1/18", "2"},
		{"1/2", "1/2", "1", "0", "1/4", "1"},
		{"-1/2", "1/3", "-1/6", "-5/6", "-1/6", "-3/2"},
		{"3/4", "-3/4", "0", "3/2", "-9/16", "-1"},
		{"0", "5/7", "5/7", "-5/7", "0", "0"},
		{"2", "3", "5", "-1", "6", "2/3"},
		{"-7/3", "-2/9", "-23/9", "-19/9", "14/27", "21/2"},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		s := MustParseRat(tt.s)

		got := r.Add(s)
		if got.String() != tt.add {
			t.Errorf("%q.Add(%q) = %q, want %q", r, s, got, tt.add)
		}
		checkReduced(t, got)

		got = r.Sub(s)
		if got.String() != tt.sub {
			t.Errorf("%q.Sub(%q) = %q, want %q", r, s, got, tt.sub)
		}
		checkReduced(t, got)

		got = r.Mul(s)
		if got.String() != tt.mul {
			t.Errorf("%q.Mul(%q) = %q, want %q", r, s, got, tt.mul)
		}
		checkReduced(t, got)

		got, err := r.Quo(s)
		if err != nil {
			t.Errorf("%q.Quo(%q) failed: %v", r, s, err)
			continue
		}
		if got.String() != tt.quo {
			t.Errorf("%q.Quo(%q) = %q, want %q", r, s, got, tt.quo)
		}
		checkReduced(t, got)
	}
}

func TestRat_Quo(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		r := MustNewRat(1, 2)
		_, err := r.Quo(Rat{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Quo(0) = %v, want %v", r, err, ErrDivisionByZero)
		}
		_, err = r.Quo(MustParseRat("0/5"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Quo(0/5) = %v, want %v", r, err, ErrDivisionByZero)
		}
	})
}

func TestRat_MustQuo(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustQuo(0) did not panic")
			}
		}()
		MustNewRat(1, 2).MustQuo(Rat{})
	})
}

func TestRat_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, want string
		}{
			{"2/3", "3/2"},
			{"-2/3", "-3/2"},
			{"5", "1/5"},
			{"-1/7", "-7"},
		}
		for _, tt := range tests {
			r := MustParseRat(tt.r)
			got, err := r.Inv()
			if err != nil {
				t.Errorf("%q.Inv() failed: %v", r, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Inv() = %q, want %q", r, got, tt.want)
			}
			checkReduced(t, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := Rat{}.Inv()
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("0.Inv() = %v, want %v", err, ErrDivisionByZero)
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustInv() did not panic")
			}
		}()
		Rat{}.MustInv()
	})
}

func TestRat_Cmp(t *testing.T) {
	tests := []struct {
		r, s string
		want int
	}{
		{"0", "0", 0},
		{"1/3", "2/6", 0},
		{"1/3", "1/2", -1},
		{"-1/3", "-1/2", 1},
		{"-1/3", "1/1000000000000", -1},
		{"7/4", "1", 1},
		{"-7/4", "-2", 1},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		s := MustParseRat(tt.s)
		got := r.Cmp(s)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", r, s, got, tt.want)
		}
		if r.Equal(s) != (tt.want == 0) {
			t.Errorf("%q.Equal(%q) = %v", r, s, r.Equal(s))
		}
		if r.Less(s) != (tt.want < 0) {
			t.Errorf("%q.Less(%q) = %v", r, s, r.Less(s))
		}
	}
	r, s := MustNewRat(-1, 3), MustNewRat(1, 4)
	if got := r.Max(s); !got.Equal(s) {
		t.Errorf("%q.Max(%q) = %q, want %q", r, s, got, s)
	}
	if got := r.Min(s); !got.Equal(r) {
		t.Errorf("%q.Min(%q) = %q, want %q", r, s, got, r)
	}
}

func TestRat_Predicates(t *testing.T) {
	tests := []struct {
		r                          string
		sign                       int
		isZero, isNeg, isPos, isInt bool
		trunc                      string
	}{
		{"0", 0, true, false, false, true, "0"},
		{"5", 1, false, false, true, true, "5"},
		{"-5", -1, false, true, false, true, "-5"},
		{"7/2", 1, false, false, true, false, "3"},
		{"-7/2", -1, false, true, false, false, "-3"},
		{"-1/3", -1, false, true, false, false, "0"},
	}
	for _, tt := range tests {
		r := MustParseRat(tt.r)
		if got := r.Sign(); got != tt.sign {
			t.Errorf("%q.Sign() = %v, want %v", r, got, tt.sign)
		}
		if got := r.IsZero(); got != tt.isZero {
			t.Errorf("%q.IsZero() = %v, want %v", r, got, tt.isZero)
		}
		if got := r.IsNeg(); got != tt.isNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", r, got, tt.isNeg)
		}
		if got := r.IsPos(); got != tt.isPos {
			t.Errorf("%q.IsPos() = %v, want %v", r, got, tt.isPos)
		}
		if got := r.IsInt(); got != tt.isInt {
			t.Errorf("%q.IsInt() = %v, want %v", r, got, tt.isInt)
		}
		if got := r.Trunc(); got.String() != tt.trunc {
			t.Errorf("%q.Trunc() = %q, want %q", r, got, tt.trunc)
		}
		if got := r.Neg().Neg(); !got.Equal(r) {
			t.Errorf("%q.Neg().Neg() = %q", r, got)
		}
		if got := r.Abs(); got.IsNeg() {
			t.Errorf("%q.Abs() = %q", r, got)
		}
	}
}

func TestRat_Properties(t *testing.T) {
	rats := []string{
		"0", "1", "-1", "1/3", "-2/7", "13/4", "999999999/1000000000",
		"-123456789012345678901/98765432109876543210",
	}
	for _, rs := range rats {
		for _, ss := range rats {
			r, s := MustParseRat(rs), MustParseRat(ss)

			// r + s - s == r
			if got := r.Add(s).Sub(s); !got.Equal(r) {
				t.Errorf("%q + %q - %q = %q, want %q", r, s, s, got, r)
			}

			// r * s == s * r
			if rs, sr := r.Mul(s), s.Mul(r); !rs.Equal(sr) {
				t.Errorf("%q * %q = %q, whereas %q * %q = %q", r, s, rs, s, r, sr)
			}

			// (r / s) * s == r
			if !s.IsZero() {
				q, err := r.Quo(s)
				if err != nil {
					t.Errorf("%q.Quo(%q) failed: %v", r, s, err)
					continue
				}
				checkReduced(t, q)
				if got := q.Mul(s); !got.Equal(r) {
					t.Errorf("(%q / %q) * %q = %q, want %q", r, s, s, got, r)
				}
			}

			// r < s iff r - s < 0
			if r.Less(s) != r.Sub(s).IsNeg() {
				t.Errorf("%q < %q = %v, whereas %q - %q = %q", r, s, r.Less(s), r, s, r.Sub(s))
			}
		}
	}
}
