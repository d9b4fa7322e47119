// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/synth"
)

// EstimateOutput is the payload of the estimate command.
type EstimateOutput struct {
	Divisor     int        `json:"divisor"`
	Base        int        `json:"base"`
	Remainder   int        `json:"remainder"`
	States      int        `json:"states"`
	LiveStates  int        `json:"live_states"`
	Rounds      int        `json:"rounds"`
	PairUpdates int        `json:"pair_updates"`
	PeakNodes   Size       `json:"peak_nodes"`
	ResultNodes Size       `json:"result_nodes"`
	MaxNodes    int        `json:"max_nodes"`
	Risk        synth.Risk `json:"risk"`
}

// Text renders the projection as an aligned two-column table.
func (o EstimateOutput) Text() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	rows := [][2]any{
		{"divisor", o.Divisor},
		{"base", o.Base},
		{"remainder", o.Remainder},
		{"states", o.States},
		{"live states", o.LiveStates},
		{"rounds", o.Rounds},
		{"pair updates", o.PairUpdates},
		{"peak nodes", o.PeakNodes},
		{"result nodes", o.ResultNodes},
		{"max nodes", o.MaxNodes},
		{"risk", o.Risk},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row[0], row[1])
	}
	_ = tw.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

type estimateCmdOptions struct {
	maxNodes   int
	maxStates  int
	order      string
	noMinimize bool
}

// NewEstimateCommand creates the estimate command.
func NewEstimateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &estimateCmdOptions{}

	cmd := &cobra.Command{
		Use:   "estimate <divisor> <base> [remainder]",
		Short: "Forecast the cost of synthesizing a divisor in a base",
		Long: `Project the elimination run on fragment sizes only. Without a remainder
every remainder is projected and the costliest one is reported. The
projection is an upper bound of the unsimplified construction and runs in
O(d^3) per remainder; risk grades its peak against --max-nodes:

  low       the unsimplified expression already fits
  elevated  simplification must shrink fragments up to 64x
  severe    synthesis will most likely exceed the budget`,
		Args: usage(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", synth.DefaultMaxNodes, "node budget the risk is graded against")
	cmd.Flags().IntVar(&opts.maxStates, "max-states", synth.DefaultMaxStates, "largest divisor projected")
	cmd.Flags().StringVar(&opts.order, "order", synth.OrderAscending.String(), "elimination order (ascending|min-degree)")
	cmd.Flags().BoolVar(&opts.noMinimize, "no-minimize", false, "project every residue without merging equivalent ones")

	return cmd
}

func runEstimate(rootOpts *RootOptions, opts *estimateCmdOptions, cmd *cobra.Command, args []string) error {
	f := rootOpts.formatter(cmd)
	cfg := rootOpts.Config
	fs := cmd.Flags()
	if fs.Changed("max-nodes") {
		cfg.Synthesis.MaxNodes = opts.maxNodes
	}
	if fs.Changed("max-states") {
		cfg.Synthesis.MaxStates = opts.maxStates
	}
	if fs.Changed("order") {
		cfg.Synthesis.Order = opts.order
	}
	if fs.Changed("no-minimize") {
		cfg.Synthesis.Minimize = !opts.noMinimize
	}

	in, err := parseInts(args, "divisor", "base", "remainder")
	if err != nil {
		return err
	}
	libOpts, err := libOptions(commandContext(cmd.Context()), cfg, rootOpts.Logger)
	if err != nil {
		return err
	}
	var pr synth.Projection
	if len(in) == 3 {
		pr, err = modregex.EstimateRemainder(in[0], in[1], in[2], libOpts...)
	} else {
		pr, err = modregex.Estimate(in[0], in[1], libOpts...)
	}
	if err != nil {
		return synthesisFailure(f, err)
	}

	return f.Success(EstimateOutput{
		Divisor:     in[0],
		Base:        in[1],
		Remainder:   pr.Remainder,
		States:      pr.States,
		LiveStates:  pr.LiveStates,
		Rounds:      pr.Rounds,
		PairUpdates: pr.PairUpdates,
		PeakNodes:   Size(pr.PeakNodes),
		ResultNodes: Size(pr.ResultNodes),
		MaxNodes:    cfg.Synthesis.MaxNodes,
		Risk:        pr.Risk,
	})
}
