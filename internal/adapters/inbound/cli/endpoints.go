package cli

import (
	"fmt"

	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/endpoints"
	"github.com/spf13/cobra"
)

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [set]",
		Short: "List built-in endpoint sets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				set, err := endpoints.Lookup(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, tui.RenderEndpointSet(set))
				return nil
			}

			var sets []domain.EndpointSet
			for _, name := range endpoints.Names() {
				set, err := endpoints.Lookup(name)
				if err != nil {
					return err
				}
				sets = append(sets, set)
			}
			fmt.Fprint(out, tui.RenderEndpointSets(sets))
			return nil
		},
	}
}
