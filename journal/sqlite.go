package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/damienborowski/AlphaFinity-v2/backtest"
	"github.com/damienborowski/AlphaFinity-v2/internal/id"
)

// SQLiteJournal stores runs in a local SQLite database.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(strategy string, res backtest.Result) (string, error) {
	runID := id.New()
	r := res.Report

	tx, err := j.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs
		(run_id, created, strategy, start_date, end_date, starting_capital, ending_capital,
		 total_return_pct, win_rate, max_drawdown, sharpe_ratio, alpha, trades)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC(), strategy, r.StartDate, r.EndDate,
		r.StartingCapital, r.EndingCapital, r.TotalReturnPct, r.WinRate,
		r.MaxDrawdown, r.SharpeRatio, r.Alpha, r.TotalTrades,
	)
	if err != nil {
		return "", fmt.Errorf("journal: insert run: %w", err)
	}

	for _, t := range res.Ledger.Log {
		_, err = tx.Exec(`
			INSERT INTO transactions
			(tx_id, run_id, time, side, price, quantity, total_cost, profit)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, runID, t.Time, string(t.Side), t.Price, t.Quantity, t.TotalCost, t.Profit,
		)
		if err != nil {
			return "", fmt.Errorf("journal: insert transaction %s: %w", t.ID, err)
		}
	}

	for _, s := range res.States {
		_, err = tx.Exec(`
			INSERT INTO snapshots (run_id, time, account_value, profit, profit_pct)
			VALUES (?, ?, ?, ?, ?)`,
			runID, s.Time, s.AccountValue, s.Profit, s.ProfitPct,
		)
		if err != nil {
			return "", fmt.Errorf("journal: insert snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// ListRuns returns recorded run summaries, newest first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, strategy, start_date, end_date, starting_capital,
		       ending_capital, total_return_pct, win_rate, max_drawdown,
		       sharpe_ratio, alpha, trades
		FROM runs ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(
			&r.RunID, &r.Created, &r.Strategy, &r.Start, &r.End,
			&r.StartingCapital, &r.EndingCapital, &r.TotalReturnPct,
			&r.WinRate, &r.MaxDrawdown, &r.SharpeRatio, &r.Alpha, &r.Trades,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
