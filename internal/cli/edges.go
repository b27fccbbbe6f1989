// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// newEdgesCommand lists every edge once as "a b cost", a < b, sorted.
func newEdgesCommand(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List every edge as \"a b cost\"",
		Args:  cobra.NoArgs,
		RunE: withGraph(out, errOut, func(e *env, _ []string) error {
			for _, edge := range e.graph.SortedEdges() {
				if _, err := fmt.Fprintf(e.out, "%d %d %d\n", edge.From, edge.To, edge.Cost); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
