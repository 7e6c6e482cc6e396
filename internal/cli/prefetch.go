package cli

import (
	"github.com/spf13/cobra"
)

var prefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Ensure every series for every stock on the configured exchanges",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getState()
		indices, err := s.Universe.Candidates(cmd.Context())
		if err == nil {
			_, err = s.Prefetch.Run(cmd.Context(), indices)
		}
		return persist(s, err)
	},
}
