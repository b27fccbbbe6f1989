// SPDX-License-Identifier: MIT
// File: config.go
// Role: Command configuration resolved from flags and UGRAPH_* environment variables.

package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. UGRAPH_VERTICES=50.
const EnvPrefix = "UGRAPH"

// Configuration keys; flag names are identical.
const (
	keyVertices = "vertices"
	keyEdges    = "edges"
	keySeed     = "seed"
	keyLogLevel = "log-level"
)

// Defaults for the generated graph.
const (
	defaultVertices = 10
	defaultEdges    = 15
	defaultSeed     = 1
	defaultLogLevel = "info"
)

// Config is the resolved configuration of one command invocation.
type Config struct {
	Vertices int
	Edges    int
	Seed     int64
	LogLevel string
}

// addGraphFlags registers the flags shared by every subcommand.
func addGraphFlags(fs *pflag.FlagSet) {
	fs.IntP(keyVertices, "n", defaultVertices, "number of vertices (0..n-1)")
	fs.IntP(keyEdges, "m", defaultEdges, "number of random edges, at most n*(n-1)/2")
	fs.Int64(keySeed, defaultSeed, "seed of the random source")
	fs.String(keyLogLevel, defaultLogLevel, "log level: debug, info, warn, error")
}

// newViper returns a viper instance bound to fs with UGRAPH_* env overrides.
// Flags explicitly set on the command line win over the environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// loadConfig reads the resolved values out of v.
func loadConfig(v *viper.Viper) Config {
	return Config{
		Vertices: v.GetInt(keyVertices),
		Edges:    v.GetInt(keyEdges),
		Seed:     v.GetInt64(keySeed),
		LogLevel: v.GetString(keyLogLevel),
	}
}
