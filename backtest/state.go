// Package backtest drives a strategy over a bar series in chronological
// order, snapshotting account state per bar, and hands the finished run to
// the analytics reduction.
package backtest

import (
	"time"

	"github.com/damienborowski/AlphaFinity-v2/analytics"
	"github.com/damienborowski/AlphaFinity-v2/ledger"
)

// State is one point-in-time account summary, recorded once per processed
// bar whether or not a trade happened.
type State struct {
	Time         time.Time `json:"time"`
	AccountValue float64   `json:"accountValue"`
	Profit       float64   `json:"profit"`
	ProfitPct    float64   `json:"profitPct"`
}

// RunState is the accumulated simulation context threaded through the
// replay fold. The ledger is the single source of truth for the current
// financial position; the snapshot list is append-only.
type RunState struct {
	Ledger ledger.Ledger `json:"ledger"`
	States []State       `json:"states"`
}

func (rs RunState) withState(s State) RunState {
	states := make([]State, len(rs.States), len(rs.States)+1)
	copy(states, rs.States)
	rs.States = append(states, s)
	return rs
}

// Result is the terminal run state plus its analytics report.
type Result struct {
	RunState
	Report analytics.Report `json:"report"`
}
