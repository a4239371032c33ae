package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattn/sexpcalc"
)

func newSamplesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Evaluate the bundled sample expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, _, _, err := o.evaluator(cmd, nil)
			if err != nil {
				return err
			}
			samples, err := sexpcalc.LoadSamples()
			if err != nil {
				return fmt.Errorf("failed to load samples: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var failed int
			for _, s := range samples {
				got := "invalid"
				if v, err := ev.Evaluate(s.Expression); err == nil {
					got = v.String()
				}
				status := "ok"
				if got != s.Want {
					status = "FAIL want " + s.Want
					failed++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Expression, got, status)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d samples failed", failed)
			}
			return nil
		},
	}
}
