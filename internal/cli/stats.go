// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newStatsCommand(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print vertex/edge counts, degree bounds and total cost",
		Args:  cobra.NoArgs,
		RunE: withGraph(out, errOut, func(e *env, _ []string) error {
			s := e.graph.Stats()
			_, err := fmt.Fprintf(e.out,
				"vertices: %d\nedges: %d\nmin degree: %d\nmax degree: %d\navg degree: %.2f\ntotal cost: %d\n",
				s.VertexCount, s.EdgeCount, s.MinDegree, s.MaxDegree, s.AverageDegree(), s.TotalCost)
			return err
		}),
	}
}
