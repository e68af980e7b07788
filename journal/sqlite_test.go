package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damienborowski/AlphaFinity-v2/backtest"
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
	"github.com/damienborowski/AlphaFinity-v2/strategies"
)

func openTestJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func sampleResult(t *testing.T) backtest.Result {
	t.Helper()

	exec := ledger.NewExecutor()
	strat, err := strategies.ByName("buy-and-hold", exec, strategies.Settings{})
	require.NoError(t, err)

	r := &backtest.Runner{Strategy: strat, Executor: exec, StartingCapital: 100}
	series := market.NewSeries([]market.Bar{
		{Date: market.NewDate(2020, time.January, 1), Close: 10},
		{Date: market.NewDate(2020, time.January, 2), Close: 20},
	})

	res, err := r.Run(series, series)
	require.NoError(t, err)
	return res
}

func TestSQLiteJournal_RecordAndList(t *testing.T) {
	j := openTestJournal(t)
	res := sampleResult(t)

	runID, err := j.RecordRun("Buy and Hold", res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	rec := runs[0]
	assert.Equal(t, runID, rec.RunID)
	assert.Equal(t, "Buy and Hold", rec.Strategy)
	assert.Equal(t, 100.0, rec.StartingCapital)
	assert.Equal(t, 200.0, rec.EndingCapital)
	assert.Equal(t, 100.0, rec.TotalReturnPct)
	assert.Equal(t, len(res.Ledger.Log), rec.Trades)
	assert.False(t, rec.Created.IsZero())
}

func TestSQLiteJournal_AssignsDistinctRunIDs(t *testing.T) {
	j := openTestJournal(t)
	res := sampleResult(t)

	first, err := j.RecordRun("Buy and Hold", res)
	require.NoError(t, err)
	second, err := j.RecordRun("Buy and Hold", res)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	runs, err := j.ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSQLiteJournal_EmptyList(t *testing.T) {
	j := openTestJournal(t)

	runs, err := j.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
