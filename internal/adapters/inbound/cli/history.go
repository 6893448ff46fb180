package cli

import (
	"encoding/json"
	"fmt"

	"github.com/respdiff/respdiff/internal/adapters/outbound/history"
	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		dir        string
		set        string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded compare runs",
		Long:  "List the runs saved with compare --record, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			entries = filterHistory(entries, set, limit)

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding .respdiff/history")
	cmd.Flags().StringVar(&set, "set", "", "only show runs of this endpoint set")
	cmd.Flags().IntVar(&limit, "limit", 0, "only show the last N runs (0 shows all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func filterHistory(entries []domain.RunEntry, set string, limit int) []domain.RunEntry {
	var out []domain.RunEntry
	for _, e := range entries {
		if set == "" || e.Set == set {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
