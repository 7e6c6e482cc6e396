package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"FinScreen/internal/usecase"
)

var (
	screenTickers []string
	screenAll     bool
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the Buffetology screen and print the passing tickers",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getState()
		ctx := cmd.Context()

		indices, err := screenIndices(cmd)
		if err != nil {
			return persist(s, err)
		}
		outcomes, err := s.Screener.Run(ctx, indices)
		if err != nil {
			return persist(s, err)
		}

		out := cmd.OutOrStdout()
		passed := 0
		for _, o := range outcomes {
			switch {
			case o.Passed:
				passed++
				fmt.Fprintf(out, "%-8s PASS\n", o.Ticker)
			case screenAll:
				fmt.Fprintf(out, "%-8s FAIL %-15s %s\n", o.Ticker, o.StepName, o.Reason)
			}
		}
		fmt.Fprintf(out, "%s: %d of %d passed\n", usecase.BuffetologyScreen, passed, len(outcomes))
		return persist(s, nil)
	},
}

// screenIndices resolves --ticker flags, or the exchange universe when none
// are given.
func screenIndices(cmd *cobra.Command) ([]int, error) {
	s := getState()
	if len(screenTickers) == 0 {
		return s.Universe.Candidates(cmd.Context())
	}
	indices := make([]int, 0, len(screenTickers))
	for _, t := range screenTickers {
		h, err := s.Symbols.GetOrCreate(cmd.Context(), t)
		if err != nil {
			return nil, err
		}
		indices = append(indices, h.Record().Index())
		h.Release()
	}
	return indices, nil
}

func init() {
	screenCmd.Flags().StringSliceVar(&screenTickers, "ticker", nil, "Screen only these tickers instead of the exchange universe")
	screenCmd.Flags().BoolVar(&screenAll, "all", false, "Also print rejected tickers with the failing step")
}
