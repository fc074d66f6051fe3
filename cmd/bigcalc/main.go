// Command bigcalc evaluates prefix arithmetic expressions over
// arbitrary-precision integers and exact rationals.
//
// Usage:
//
//	bigcalc eval "* 10 + 1.23 4.56"
//	bigcalc --mode int eval "% -7 3"
//	bigcalc --precision 4 batch expressions.txt
//	bigcalc repl
//	bigcalc gcd 123456789000000000 987654321000000000
//
// Arguments that start with '-' must follow "--", for example
// bigcalc eval -- "- 1 3".
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds the flag values and the settings resolved from them.
type app struct {
	workDir string

	// Persistent flags
	configPath string
	precision  int
	mode       string
	jobs       int
	color      string
	verbose    bool

	settings settings
	log      zerolog.Logger
	errColor *color.Color
}

func newApp(workDir string) *app {
	return &app{
		workDir:  workDir,
		log:      zerolog.Nop(),
		errColor: color.New(color.FgRed, color.Bold),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision calculator",
		Long:          `bigcalc evaluates prefix (Polish) notation expressions over arbitrary-precision integers and exact rationals`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to "+configFileName+" (default: searched upward from the working directory)")
	flags.IntVar(&a.precision, "precision", -1, "print rationals as decimals with this many digits after the point")
	flags.StringVar(&a.mode, "mode", "rat", "number domain (rat|int)")
	flags.IntVar(&a.jobs, "jobs", 0, "maximum number of parallel evaluations (0 = GOMAXPROCS)")
	flags.StringVar(&a.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(a.evalCmd())
	cmd.AddCommand(a.batchCmd())
	cmd.AddCommand(a.replCmd())
	cmd.AddCommand(a.gcdCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// main runs the command tree and exits with status 1 if it fails.
func main() {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := newApp(wd)
	cmd := a.rootCmd()
	err = cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		a.printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
