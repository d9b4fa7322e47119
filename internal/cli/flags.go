// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/synth"
)

// synthFlags are the budget and render flags shared by synth, match,
// verify and repl. Only flags set on the command line override the config.
type synthFlags struct {
	maxNodes   int
	maxSteps   int
	maxStates  int
	timeout    time.Duration
	order      string
	noMinimize bool
	noAnchor   bool
	noClasses  bool
}

func (f *synthFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.maxNodes, "max-nodes", synth.DefaultMaxNodes, "largest fragment allowed")
	fs.IntVar(&f.maxSteps, "max-steps", synth.DefaultMaxSteps, "pair updates allowed (0 = unlimited)")
	fs.IntVar(&f.maxStates, "max-states", synth.DefaultMaxStates, "largest divisor accepted")
	fs.DurationVar(&f.timeout, "timeout", 0, "soft time limit per expression (0 = none)")
	fs.StringVar(&f.order, "order", synth.OrderAscending.String(), "elimination order (ascending|min-degree)")
	fs.BoolVar(&f.noMinimize, "no-minimize", false, "eliminate over every residue without merging equivalent ones")
	fs.BoolVar(&f.noAnchor, "no-anchor", false, "omit the ^...$ wrapper")
	fs.BoolVar(&f.noClasses, "no-classes", false, "spell digit alternatives as (0|2|4) instead of [024]")
}

// apply copies the flags set on fs into cfg.
func (f *synthFlags) apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("max-nodes") {
		cfg.Synthesis.MaxNodes = f.maxNodes
	}
	if fs.Changed("max-steps") {
		cfg.Synthesis.MaxSteps = f.maxSteps
	}
	if fs.Changed("max-states") {
		cfg.Synthesis.MaxStates = f.maxStates
	}
	if fs.Changed("timeout") {
		cfg.Synthesis.Timeout = f.timeout
	}
	if fs.Changed("order") {
		cfg.Synthesis.Order = f.order
	}
	if fs.Changed("no-minimize") {
		cfg.Synthesis.Minimize = !f.noMinimize
	}
	if fs.Changed("no-anchor") {
		cfg.Render.Anchors = !f.noAnchor
	}
	if fs.Changed("no-classes") {
		cfg.Render.CharClasses = !f.noClasses
	}
}

// libOptions turns cfg into library options. Rounds go to logger at debug.
func libOptions(ctx context.Context, cfg Config, logger *slog.Logger) ([]modregex.Option, error) {
	order, err := synth.ParseOrder(cfg.Synthesis.Order)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "order", err)
	}
	opts := []modregex.Option{
		modregex.WithContext(ctx),
		modregex.WithMaxNodes(cfg.Synthesis.MaxNodes),
		modregex.WithMaxSteps(cfg.Synthesis.MaxSteps),
		modregex.WithMaxStates(cfg.Synthesis.MaxStates),
		modregex.WithTimeLimit(cfg.Synthesis.Timeout),
		modregex.WithOrder(order),
		modregex.WithOnEliminate(roundLogger(logger)),
	}
	if !cfg.Synthesis.Minimize {
		opts = append(opts, modregex.WithoutMinimize())
	}
	if !cfg.Render.Anchors {
		opts = append(opts, modregex.WithoutAnchors())
	}
	if !cfg.Render.CharClasses {
		opts = append(opts, modregex.WithoutCharClasses())
	}

	return opts, nil
}

// commandContext returns ctx or Background when the command has none.
func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
