// Package calc evaluates arithmetic expressions written in prefix (Polish)
// notation over arbitrary-precision numbers.
//
// An expression is a sequence of whitespace-separated tokens.
// Tokens are processed from right to left: operands are pushed onto a stack,
// and every operator pops its left operand first and its right operand second.
// For example, "* 10 + 1.23 4.56" evaluates to 57.9.
package calc

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/govalues/bigint"
)

// Mode selects the number domain of an evaluation.
type Mode int

const (
	// ModeRat evaluates over exact rationals.
	// Operands may be integers, fractions "n/d" or decimals "i.f".
	ModeRat Mode = iota
	// ModeInt evaluates over integers.
	// Division truncates towards zero and "%" takes the sign of the dividend.
	ModeInt
)

// ErrExpression is wrapped by every error caused by a malformed expression.
var ErrExpression = errors.New("invalid expression")

// ParseMode converts "rat" or "int" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rat":
		return ModeRat, nil
	case "int":
		return ModeInt, nil
	default:
		return 0, fmt.Errorf("unsupported mode %q (must be rat or int)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRat:
		return "rat"
	case ModeInt:
		return "int"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Result is the value of an evaluated expression.
type Result struct {
	value bigint.Rat
	mode  Mode
}

// Rat returns the result as a rational.
func (r Result) Rat() bigint.Rat {
	return r.value
}

// Int returns the result as an integer.
// If the result is not an integer, ok is false.
func (r Result) Int() (d bigint.Int, ok bool) {
	if !r.value.IsInt() {
		return bigint.Int{}, false
	}
	return r.value.Num(), true
}

// Mode returns the mode the result was evaluated in.
func (r Result) Mode() Mode {
	return r.mode
}

// Text renders the result.
// A negative prec renders rationals as "num/den", otherwise as fixed-point
// decimals with prec digits after the decimal point.
// Integers evaluated in [ModeInt] are always rendered exactly.
func (r Result) Text(prec int) string {
	if prec < 0 || r.mode == ModeInt {
		return r.value.String()
	}
	return r.value.Decimal(prec)
}

func (r Result) String() string {
	return r.Text(-1)
}

// Evaluate computes the value of a prefix expression.
func Evaluate(expr string, mode Mode) (Result, error) {
	tokens, err := parseTokens(expr)
	if err != nil {
		return Result{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens, mode)
	if err != nil {
		return Result{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return Result{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, ErrExpression)
	}
	return Result{value: stack[0], mode: mode}, nil
}

func parseTokens(expr string) ([]string, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens: %w", ErrExpression)
	}
	return tokens, nil
}

func processTokens(tokens []string, mode Mode) ([]bigint.Rat, error) {
	stack := make([]bigint.Rat, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "%", "gcd":
			stack, err = processOperator(stack, token, mode)
		default:
			stack, err = processOperand(stack, token, mode)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []bigint.Rat, token string, mode Mode) ([]bigint.Rat, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrExpression)
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigint.Rat
	var err error
	switch mode {
	case ModeInt:
		result, err = applyInt(left.Num(), right.Num(), token)
	default:
		result, err = applyRat(left, right, token)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func applyRat(left, right bigint.Rat, token string) (bigint.Rat, error) {
	switch token {
	case "+":
		return left.Add(right), nil
	case "-":
		return left.Sub(right), nil
	case "*":
		return left.Mul(right), nil
	case "/":
		return left.Quo(right)
	default:
		return bigint.Rat{}, fmt.Errorf("operator %q requires int mode: %w", token, ErrExpression)
	}
}

func applyInt(left, right bigint.Int, token string) (bigint.Rat, error) {
	var result bigint.Int
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		result, err = left.Rem(right)
	case "gcd":
		result = bigint.GCD(left, right)
	}
	if err != nil {
		return bigint.Rat{}, err
	}
	return bigint.IntRat(result), nil
}

func processOperand(stack []bigint.Rat, token string, mode Mode) ([]bigint.Rat, error) {
	if mode == ModeInt {
		d, err := bigint.Parse(token)
		if err != nil {
			return nil, err
		}
		return append(stack, bigint.IntRat(d)), nil
	}
	r, err := bigint.ParseRat(token)
	if err != nil {
		return nil, err
	}
	return append(stack, r), nil
}

// Outcome is the result of one expression evaluated by [EvaluateAll].
type Outcome struct {
	Expr   string // the source expression
	Result Result // the value, valid only if Err is nil
	Err    error  // the evaluation error, if any
}

// EvaluateAll evaluates every expression concurrently using at most jobs
// goroutines, or GOMAXPROCS goroutines if jobs is not positive.
// Outcomes are returned in the order of exprs.
// An expression that fails to evaluate is reported in its Outcome and does
// not stop the others; the returned error is only set when ctx is cancelled.
func EvaluateAll(ctx context.Context, exprs []string, mode Mode, jobs int) ([]Outcome, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Every goroutine writes only its own index
	outcomes := make([]Outcome, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(exprs)))

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Evaluate(expr, mode)
			outcomes[i] = Outcome{Expr: expr, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
