// Package journal persists completed backtest runs for later inspection.
// The simulation itself stays stateless; only finished results are written.
package journal

import (
	"time"

	"github.com/damienborowski/AlphaFinity-v2/backtest"
)

// RunRecord mirrors the runs table.
type RunRecord struct {
	RunID    string
	Created  time.Time
	Strategy string

	Start time.Time
	End   time.Time

	StartingCapital float64
	EndingCapital   float64
	TotalReturnPct  float64
	WinRate         float64
	MaxDrawdown     float64
	SharpeRatio     float64
	Alpha           float64
	Trades          int
}

// Journal records finished runs.
type Journal interface {
	// RecordRun persists the run summary, its transaction log, and its
	// per-bar snapshots. Returns the assigned run ID.
	RecordRun(strategy string, res backtest.Result) (string, error)
	Close() error
}
