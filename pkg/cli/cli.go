// Package cli wires the engine (pkg/parser, pkg/eval, pkg/scope,
// pkg/format) to a kong-driven command surface, mirroring the
// global-struct-plus-subcommand pattern this corpus uses for its own CLI:
// a top-level options struct carries global flags, each subcommand is a
// struct with a Run(*Context) error method, and kong.Parse dispatches.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cidrcalc/cidrcalc/pkg/config"
)

// Context is threaded into every subcommand's Run method.
type Context struct {
	Logger *slog.Logger
	Config config.Config
}

var cli struct {
	LogLevel string `help:"Minimum log level (debug, info, warn, error)." default:"warn" enum:"debug,info,warn,error"`
	Config   string `help:"Path to a TOML configuration file."`

	Run  RunCmd  `cmd:"" help:"Evaluate a script file in batch mode."`
	Repl ReplCmd `cmd:"" help:"Start an interactive session reading statements from standard input."`
}

// Main parses os.Args, builds the shared Context, and runs the selected
// subcommand. It returns the process exit code.
func Main() int {
	ctx := kong.Parse(&cli, kong.UsageOnError())

	logger := newLogger(cli.LogLevel)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		fmt.Fprintf(os.Stderr, "cidrcalc: %v\n", err)
		return 1
	}

	if err := ctx.Run(&Context{Logger: logger, Config: cfg}); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "cidrcalc: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
