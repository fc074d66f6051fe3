package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/calc"
)

// batchRecord is one entry of the msgpack report written by "batch --msgpack".
type batchRecord struct {
	Expr  string      `msgpack:"expr"`
	Value *bigint.Rat `msgpack:"value,omitempty"`
	Error string      `msgpack:"error,omitempty"`
}

func (a *app) batchCmd() *cobra.Command {
	var msgpackPath string

	cmd := &cobra.Command{
		Use:   "batch FILE|-",
		Short: "Evaluate every line of a file concurrently",
		Long: `batch evaluates one expression per line of FILE, or of standard input if FILE is "-".
Empty lines and lines starting with '#' are skipped.
Results are printed in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := readExprs(cmd, args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			outcomes, err := calc.EvaluateAll(cmd.Context(), exprs, a.settings.mode, a.settings.jobs)
			if err != nil {
				return err
			}
			a.log.Debug().
				Int("count", len(outcomes)).
				Int("jobs", a.settings.jobs).
				Dur("elapsed", time.Since(start)).
				Msg("batch evaluated")

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					a.printError(cmd.ErrOrStderr(), fmt.Errorf("%q: %w", o.Expr, o.Err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.Result.Text(a.settings.precision))
			}

			if msgpackPath != "" {
				if err := writeReport(msgpackPath, outcomes); err != nil {
					return err
				}
				a.log.Debug().Str("path", msgpackPath).Msg("msgpack report written")
			}
			return errFailed(failed, len(outcomes))
		},
	}

	cmd.Flags().StringVar(&msgpackPath, "msgpack", "", "also write the results to this file as msgpack")
	return cmd
}

// readExprs reads the non-empty, non-comment lines of path, or of the
// command input if path is "-".
func readExprs(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return exprs, nil
}

// writeReport stores outcomes as a msgpack array of batchRecord.
func writeReport(path string, outcomes []calc.Outcome) error {
	records := make([]batchRecord, len(outcomes))
	for i, o := range outcomes {
		records[i].Expr = o.Expr
		if o.Err != nil {
			records[i].Error = o.Err.Error()
			continue
		}
		v := o.Result.Rat()
		records[i].Value = &v
	}
	b, err := msgpack.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
