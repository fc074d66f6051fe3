package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/bigint/internal/calc"
)

const replPrompt = "> "

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from standard input and print their values",
		Long: `repl evaluates one expression per line until end of input or "quit".
The prompt is only shown when standard input is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()

			prompt := false
			if f, ok := in.(*os.File); ok && isTerminal(f) {
				prompt = true
			}

			sc := bufio.NewScanner(in)
			for {
				if prompt {
					fmt.Fprint(out, replPrompt)
				}
				if !sc.Scan() {
					break
				}
				line := strings.TrimSpace(sc.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				}
				res, err := calc.Evaluate(line, a.settings.mode)
				if err != nil {
					a.printError(cmd.ErrOrStderr(), err)
					continue
				}
				fmt.Fprintln(out, res.Text(a.settings.precision))
			}
			if prompt {
				fmt.Fprintln(out)
			}
			return sc.Err()
		},
	}
}
