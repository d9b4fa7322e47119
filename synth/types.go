// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"

	"github.com/katalvlaran/modregex/regex"
)

// Stats summarizes one elimination run.
type Stats struct {
	States      int `json:"states"`       // automaton states after optional minimization
	LiveStates  int `json:"live_states"`  // states kept in the table
	Rounds      int `json:"rounds"`       // elimination rounds performed
	Steps       int `json:"steps"`        // pair updates performed
	PeakNodes   int `json:"peak_nodes"`   // largest fragment seen
	ResultNodes int `json:"result_nodes"` // size of the final expression
}

// Result is the outcome of Eliminate.
type Result struct {
	Expr  *regex.Node // canonical expression; regex.Empty() for an empty language
	Stats Stats
}

// Risk grades a projection against the node budget.
type Risk int

const (
	// RiskLow means the unsimplified construction already fits the budget.
	RiskLow Risk = iota
	// RiskElevated means simplification must shrink fragments up to 64×.
	RiskElevated
	// RiskSevere means synthesis is likely to hit ErrBudgetExceeded.
	RiskSevere
)

// elevatedFactor is the PeakNodes/MaxNodes ratio separating Elevated from Severe.
const elevatedFactor = 64

// String returns a lower-case name of the risk.
func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskElevated:
		return "elevated"
	case RiskSevere:
		return "severe"
	default:
		return fmt.Sprintf("Risk(%d)", int(r))
	}
}

// MarshalText encodes the risk by name.
func (r Risk) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// gradeRisk maps a projected peak onto a Risk band.
func gradeRisk(peak float64, maxNodes int) Risk {
	switch budget := float64(maxNodes); {
	case peak <= budget:
		return RiskLow
	case peak <= elevatedFactor*budget:
		return RiskElevated
	default:
		return RiskSevere
	}
}

// Projection is an upper-bound forecast of an elimination run computed on
// fragment sizes only. Sizes are float64 because they may grow past any
// integer type; +Inf is possible. Remainder is the accept residue of the
// automaton as given, before any minimization.
type Projection struct {
	Remainder   int     `json:"remainder"`
	States      int     `json:"states"`
	LiveStates  int     `json:"live_states"`
	Rounds      int     `json:"rounds"`
	PairUpdates int     `json:"pair_updates"`
	PeakNodes   float64 `json:"peak_nodes"`
	ResultNodes float64 `json:"result_nodes"`
	Risk        Risk    `json:"risk"`
}
