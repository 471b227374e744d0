package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show recorded runs, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer s.Close()

			var v any
			if len(args) == 1 {
				v, err = s.Get(cmd.Context(), args[0])
			} else {
				v, err = s.List(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum runs to list")
	return cmd
}
