package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show TICKER",
	Short: "Print a ticker's fully ensured record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getState()
		rec, err := s.Stocks.Get(cmd.Context(), args[0])
		if err == nil {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			err = enc.Encode(rec)
		}
		return persist(s, err)
	},
}
