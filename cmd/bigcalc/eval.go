package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/calc"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate prefix expressions given as arguments",
		Example: `  bigcalc eval "* 10 + 1.23 4.56"
  bigcalc --precision 2 eval "/ 2 3"
  bigcalc --mode int eval "% -7 3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for i, expr := range args {
				start := time.Now()
				res, err := calc.Evaluate(expr, a.settings.mode)
				a.log.Debug().
					Int("index", i).
					Str("expr", expr).
					Dur("elapsed", time.Since(start)).
					Err(err).
					Msg("evaluated")
				if err != nil {
					failed++
					a.printError(cmd.ErrOrStderr(), fmt.Errorf("%q: %w", expr, err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Text(a.settings.precision))
			}
			return errFailed(failed, len(args))
		},
	}
}

func (a *app) gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A B",
		Short: "Print the greatest common divisor of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := bigint.Parse(args[0])
			if err != nil {
				return fmt.Errorf("first argument: %w", err)
			}
			y, err := bigint.Parse(args[1])
			if err != nil {
				return fmt.Errorf("second argument: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), bigint.GCD(x, y))
			return nil
		},
	}
}
