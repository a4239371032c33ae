package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattn/sexpcalc"
)

func newReplCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read and evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, logger, _, err := o.evaluator(cmd, nil)
			if err != nil {
				return err
			}
			return repl(cmd.InOrStdin(), cmd.OutOrStdout(), ev, logger)
		},
	}
}

// repl keeps going after rejected expressions; it stops at end of input.
func repl(r io.Reader, out io.Writer, ev *sexpcalc.Evaluator, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalOne(out, ev, logger, line)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
