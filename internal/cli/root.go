// SPDX-License-Identifier: MIT
// File: root.go
// Role: Root cobra command and the shared graph/logger setup of its subcommands.

// Package cli implements the ugraph command: it generates a random undirected
// graph with builder.NewRandom and prints facts about it.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

// env carries what every subcommand needs once flags are resolved.
type env struct {
	cfg    Config
	logger *zap.Logger
	graph  *core.Graph[int]
	out    io.Writer
}

// NewRootCommand returns the ugraph command tree writing results to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "ugraph",
		Short:         "Generate and inspect random undirected graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	addGraphFlags(root.PersistentFlags())

	root.AddCommand(
		newStatsCommand(out, errOut),
		newEdgesCommand(out, errOut),
		newDegreeCommand(out, errOut),
	)

	return root
}

// withGraph wraps run so it receives a resolved config, a logger and the
// generated graph.
func withGraph(out, errOut io.Writer, run func(e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg := loadConfig(v)

		logger, err := newLogger(cfg.LogLevel, errOut)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Debug("building graph",
			zap.Int("vertices", cfg.Vertices),
			zap.Int("edges", cfg.Edges),
			zap.Int64("seed", cfg.Seed),
		)
		g, err := builder.NewRandom(cfg.Vertices, cfg.Edges, builder.WithSeed(cfg.Seed))
		if err != nil {
			logger.Error("graph construction failed", zap.Error(err))
			return fmt.Errorf("build graph: %w", err)
		}
		logger.Info("graph built",
			zap.Int("vertices", g.VertexCount()),
			zap.Int("edges", g.EdgeCount()),
		)

		return run(&env{cfg: cfg, logger: logger, graph: g, out: out}, args)
	}
}
