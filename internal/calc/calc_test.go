package calc

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/bigint"
)

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{
		"":      ModeRat,
		"rat":   ModeRat,
		"RAT":   ModeRat,
		" int ": ModeInt,
	} {
		got, err := ParseMode(s)
		require.NoError(t, err, s)
		require.Equal(t, want, got, s)
	}

	_, err := ParseMode("float")
	require.Error(t, err)

	require.Equal(t, "rat", ModeRat.String())
	require.Equal(t, "int", ModeInt.String())
	require.Equal(t, "Mode(7)", Mode(7).String())
}

func TestEvaluate_Rat(t *testing.T) {
	cases := []struct {
		expr string
		want string
		prec int
		text string
	}{
		{"7", "7", -1, "7"},
		{"* 10 + 1.23 4.56", "579/10", 2, "57.90"},
		{"+ 1/3 1/6", "1/2", 4, "0.5000"},
		{"/ 2 3", "2/3", 2, "0.67"},
		{"/ -2 3", "-2/3", 2, "-0.67"},
		{"- 1 3.250", "-9/4", -1, "-9/4"},
		{"* 999999999999999999 999999999999999999", "999999999999999998000000000000000001", 0, "999999999999999998000000000000000001"},
	}
	for _, c := range cases {
		res, err := Evaluate(c.expr, ModeRat)
		require.NoError(t, err, c.expr)
		require.Equal(t, c.want, res.String(), c.expr)
		require.Equal(t, c.text, res.Text(c.prec), c.expr)
		require.Equal(t, ModeRat, res.Mode())
	}
}

func TestEvaluate_Int(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"+ 999999999 1", "1000000000"},
		{"/ 1000000000000000000 999999999", "1000000001"},
		{"% 1000000000000000000 999999999", "1"},
		{"% -7 3", "-1"},
		{"% 7 -3", "1"},
		{"/ -7 2", "-3"},
		{"gcd 123456789000000000 987654321000000000", "9000000000"},
		{"* -12345678901234567890 98765432109876543210", "-1219326311370217952237463801111263526900"},
	}
	for _, c := range cases {
		res, err := Evaluate(c.expr, ModeInt)
		require.NoError(t, err, c.expr)
		require.Equal(t, c.want, res.Text(5), c.expr)

		d, ok := res.Int()
		require.True(t, ok, c.expr)
		require.Equal(t, c.want, d.String(), c.expr)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	cases := []struct {
		expr string
		mode Mode
		want error
	}{
		{"", ModeRat, ErrExpression},
		{"   ", ModeInt, ErrExpression},
		{"+ 1", ModeRat, ErrExpression},
		{"1 2", ModeRat, ErrExpression},
		{"% 1 2", ModeRat, ErrExpression},
		{"gcd 4 6", ModeRat, ErrExpression},
		{"+ 1 x", ModeRat, bigint.ErrSyntax},
		{"+ 1 1.5", ModeInt, bigint.ErrSyntax},
		{"/ 1 0", ModeRat, bigint.ErrDivisionByZero},
		{"/ 1 0", ModeInt, bigint.ErrDivisionByZero},
		{"% 1 0", ModeInt, bigint.ErrDivisionByZero},
		{"+ 1 1/0", ModeRat, bigint.ErrDivisionByZero},
	}
	for _, c := range cases {
		_, err := Evaluate(c.expr, c.mode)
		require.ErrorIs(t, err, c.want, "%q in %v mode", c.expr, c.mode)
	}
}

func TestResult_Int(t *testing.T) {
	res, err := Evaluate("/ 1 2", ModeRat)
	require.NoError(t, err)
	_, ok := res.Int()
	require.False(t, ok)
	require.True(t, res.Rat().Equal(bigint.MustNewRat(1, 2)))
}

func TestEvaluateAll(t *testing.T) {
	exprs := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		exprs = append(exprs, fmt.Sprintf("* %d 1000000000", i))
	}
	exprs = append(exprs, "/ 1 0")

	for _, jobs := range []int{0, 1, 4, 100} {
		outcomes, err := EvaluateAll(context.Background(), exprs, ModeInt, jobs)
		require.NoError(t, err)
		require.Len(t, outcomes, len(exprs))
		for i := 0; i < 64; i++ {
			require.Equal(t, exprs[i], outcomes[i].Expr)
			require.NoError(t, outcomes[i].Err)
			want := bigint.NewInt(int64(i)).MulInt64(1_000_000_000)
			d, ok := outcomes[i].Result.Int()
			require.True(t, ok)
			require.True(t, d.Equal(want), "outcome %d = %v, want %v", i, d, want)
		}
		require.ErrorIs(t, outcomes[64].Err, bigint.ErrDivisionByZero)
	}
}

func TestEvaluateAll_Empty(t *testing.T) {
	outcomes, err := EvaluateAll(context.Background(), nil, ModeRat, 4)
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestEvaluateAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EvaluateAll(ctx, []string{"+ 1 2", "+ 3 4"}, ModeRat, 1)
	require.ErrorIs(t, err, context.Canceled)
}
