// SPDX-License-Identifier: MIT

package modregex

import (
	"context"
	"time"

	"github.com/katalvlaran/modregex/regex"
	"github.com/katalvlaran/modregex/synth"
)

// Option configures Synthesize, SynthesizeResult, Estimate and
// EstimateRemainder.
type Option func(*Options)

// Options holds the synthesis budget and the rendering style.
type Options struct {
	// Synth carries the budget and the elimination policy.
	Synth synth.Options

	// Anchors wraps the output in ^…$ (default on), so regexp and other
	// searching engines match whole numerals only.
	Anchors bool

	// CharClasses renders digit alternatives as [..] classes (default on).
	CharClasses bool
}

// DefaultOptions returns synth.DefaultOptions, anchored output with
// character classes.
func DefaultOptions() Options {
	return Options{Synth: synth.DefaultOptions(), Anchors: true, CharClasses: true}
}

// synthOption hands the collected budget to synth.
func (o Options) synthOption() synth.Option {
	return func(so *synth.Options) { *so = o.Synth }
}

func (o Options) renderOptions() []regex.RenderOption {
	var ro []regex.RenderOption
	if !o.CharClasses {
		ro = append(ro, regex.WithoutCharClasses())
	}
	if o.Anchors {
		ro = append(ro, regex.WithAnchors())
	}
	return ro
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return WithSynthOptions(synth.WithContext(ctx))
}

// WithMaxNodes caps the size of any intermediate fragment.
func WithMaxNodes(n int) Option {
	return WithSynthOptions(synth.WithMaxNodes(n))
}

// WithMaxSteps caps the number of pair updates; 0 disables the cap.
func WithMaxSteps(n int) Option {
	return WithSynthOptions(synth.WithMaxSteps(n))
}

// WithMaxStates caps the divisor, and with it the automaton and table size.
func WithMaxStates(n int) Option {
	return WithSynthOptions(synth.WithMaxStates(n))
}

// WithTimeLimit sets a soft wall-clock budget; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return WithSynthOptions(synth.WithTimeLimit(d))
}

// WithOrder selects the interior elimination policy.
func WithOrder(ord synth.Order) Option {
	return WithSynthOptions(synth.WithOrder(ord))
}

// WithoutMinimize skips merging equivalent residues before elimination.
func WithoutMinimize() Option {
	return WithSynthOptions(synth.WithoutMinimize())
}

// WithOnEliminate installs a per-round progress hook.
func WithOnEliminate(fn func(synth.Round) error) Option {
	return WithSynthOptions(synth.WithOnEliminate(fn))
}

// WithSynthOptions applies raw synth options.
func WithSynthOptions(opts ...synth.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			opt(&o.Synth)
		}
	}
}

// WithoutAnchors drops the ^…$ wrapper. The bare expression describes
// whole numerals only under full-match semantics; a searching engine such
// as regexp accepts any input containing a match.
func WithoutAnchors() Option {
	return func(o *Options) { o.Anchors = false }
}

// WithoutCharClasses spells digit alternatives as (0|2|4) instead of [024].
func WithoutCharClasses() Option {
	return func(o *Options) { o.CharClasses = false }
}
