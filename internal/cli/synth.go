// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/synth"
)

// SynthResult is one synthesized expression.
type SynthResult struct {
	Divisor   int         `json:"divisor"`
	Base      int         `json:"base"`
	Remainder int         `json:"remainder"`
	Regex     string      `json:"regex"`
	Stats     synth.Stats `json:"stats"`
}

// SynthOutput is the payload of the synth command.
type SynthOutput struct {
	Results []SynthResult `json:"results"`
	File    string        `json:"file,omitempty"`
	all     bool
}

// Text prints bare expressions, prefixed by the remainder with --all.
func (o SynthOutput) Text() string {
	if o.File != "" {
		return fmt.Sprintf("Regex written to '%s'", o.File)
	}
	return o.body()
}

func (o SynthOutput) body() string {
	var sb strings.Builder
	for i, r := range o.Results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if o.all {
			fmt.Fprintf(&sb, "%d\t", r.Remainder)
		}
		sb.WriteString(r.Regex)
	}
	return sb.String()
}

type synthCmdOptions struct {
	synthFlags
	all    bool
	jobs   int
	output string
}

// NewSynthCommand creates the synth command.
func NewSynthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &synthCmdOptions{}

	cmd := &cobra.Command{
		Use:   "synth <divisor> <base> [remainder]",
		Short: "Synthesize the regex for n mod divisor = remainder in a base",
		Long: `Synthesize a regular expression matching exactly the base-b numerals n
with n mod d = r. Digits above 9 are written a-f.

With --all the remainder is omitted and every remainder 0..d-1 is
synthesized concurrently, --jobs at a time.`,
		Example: `  modregex synth 3 10 1
  modregex synth 5 2 --all --no-anchor
  modregex synth 7 16 3 --order min-degree --output output.txt`,
		Args: usage(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynth(rootOpts, opts, cmd, args)
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().BoolVar(&opts.all, "all", false, "synthesize every remainder of the divisor")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "remainders synthesized in parallel with --all (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the expression(s) to this file")

	return cmd
}

func runSynth(rootOpts *RootOptions, opts *synthCmdOptions, cmd *cobra.Command, args []string) error {
	f := rootOpts.formatter(cmd)
	cfg := rootOpts.Config
	opts.apply(cmd.Flags(), &cfg)
	if cmd.Flags().Changed("jobs") {
		cfg.Synthesis.Jobs = opts.jobs
	}
	if cfg.Synthesis.Jobs <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("jobs must be positive, got %d", cfg.Synthesis.Jobs))
	}

	names := []string{"divisor", "base", "remainder"}
	switch {
	case opts.all && len(args) != 2:
		return NewExitError(ExitCommandError, "--all takes <divisor> <base> only")
	case !opts.all && len(args) != 3:
		return NewExitError(ExitCommandError, "expected <divisor> <base> <remainder>")
	}
	in, err := parseInts(args, names...)
	if err != nil {
		return err
	}
	d, b := in[0], in[1]

	ctx := commandContext(cmd.Context())
	r := -1
	if !opts.all {
		r = in[2]
	}
	warnRisk(ctx, rootOpts.Logger, cfg, d, b, r)

	var out SynthOutput
	if opts.all {
		out.Results, err = synthesizeAll(ctx, cfg, rootOpts.Logger, d, b)
		out.all = true
	} else {
		var res SynthResult
		res, err = synthesizeOne(ctx, cfg, rootOpts.Logger, d, b, in[2])
		out.Results = []SynthResult{res}
	}
	if err != nil {
		return synthesisFailure(f, err)
	}

	if opts.output != "" {
		if err = os.WriteFile(opts.output, []byte(out.body()), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		out.File = opts.output
		rootOpts.Logger.Info("wrote expressions", "file", opts.output, "count", len(out.Results))
	}

	return f.Success(out)
}

// warnRisk logs a warning when the cost projection exceeds the node budget.
// A negative r projects every remainder and warns about the costliest.
func warnRisk(ctx context.Context, logger *slog.Logger, cfg Config, d, b, r int) {
	opts, err := libOptions(ctx, cfg, logger)
	if err != nil {
		return
	}
	var pr synth.Projection
	if r < 0 {
		pr, err = modregex.Estimate(d, b, opts...)
	} else {
		pr, err = modregex.EstimateRemainder(d, b, r, opts...)
	}
	if err != nil || pr.Risk == synth.RiskLow {
		return
	}
	logger.Warn("synthesis may exceed the node budget",
		"divisor", d,
		"base", b,
		"remainder", pr.Remainder,
		"risk", pr.Risk,
		"projected_peak", Size(pr.PeakNodes),
		"max_nodes", cfg.Synthesis.MaxNodes,
	)
}

func synthesizeOne(ctx context.Context, cfg Config, logger *slog.Logger, d, b, r int) (SynthResult, error) {
	logger = logger.With("divisor", d, "base", b, "remainder", r)
	opts, err := libOptions(ctx, cfg, logger)
	if err != nil {
		return SynthResult{}, err
	}
	res, err := modregex.SynthesizeResult(d, b, r, opts...)
	if err != nil {
		return SynthResult{}, err
	}
	logger.Debug("synthesized",
		"rounds", res.Stats.Rounds,
		"steps", res.Stats.Steps,
		"peak_nodes", res.Stats.PeakNodes,
		"result_nodes", res.Stats.ResultNodes,
	)

	return SynthResult{Divisor: d, Base: b, Remainder: r, Regex: res.Text, Stats: res.Stats}, nil
}

// synthesizeAll runs every remainder of d with at most cfg.Synthesis.Jobs
// in flight. The first failure cancels the rest.
func synthesizeAll(ctx context.Context, cfg Config, logger *slog.Logger, d, b int) ([]SynthResult, error) {
	// Inputs the library rejects before allocating fail once, not d times.
	if err := modregex.Validate(d, b, 0); err != nil {
		return nil, err
	}
	if d > cfg.Synthesis.MaxStates {
		_, err := synthesizeOne(ctx, cfg, logger, d, b, 0)
		return nil, err
	}

	results := make([]SynthResult, d)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Synthesis.Jobs)
	for r := 0; r < d; r++ {
		r := r
		g.Go(func() error {
			res, err := synthesizeOne(gctx, cfg, logger, d, b, r)
			if err != nil {
				return err
			}
			results[r] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
