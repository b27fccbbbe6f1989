// SPDX-License-Identifier: MIT

// Command ugraph generates a random undirected graph and prints its
// statistics, edge list or the neighbourhood of one vertex.
//
//	ugraph stats -n 100 -m 250 --seed 7
//	UGRAPH_LOG_LEVEL=debug ugraph degree 3
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ugraph/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ugraph:", err)
		os.Exit(1)
	}
}
