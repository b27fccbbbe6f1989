// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDegreeCommand(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "degree VERTEX",
		Short: "Print the degree and sorted neighbours of a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(out, errOut, func(e *env, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("vertex %q: %w", args[0], err)
			}
			d, err := e.graph.Degree(v)
			if err != nil {
				e.logger.Warn("degree lookup failed", zap.Int("vertex", v), zap.Error(err))
				return err
			}
			nbs, err := e.graph.SortedNeighbours(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.out, "degree: %d\nneighbours: %v\n", d, nbs)
			return err
		}),
	}
}
