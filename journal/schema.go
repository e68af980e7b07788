package journal

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	strategy TEXT NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	starting_capital REAL NOT NULL,
	ending_capital REAL NOT NULL,
	total_return_pct REAL NOT NULL,
	win_rate REAL NOT NULL,
	max_drawdown REAL NOT NULL,
	sharpe_ratio REAL NOT NULL,
	alpha REAL NOT NULL,
	trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	tx_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	time DATETIME NOT NULL,
	side TEXT NOT NULL,
	price REAL NOT NULL,
	quantity INTEGER NOT NULL,
	total_cost REAL NOT NULL,
	profit REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	time DATETIME NOT NULL,
	account_value REAL NOT NULL,
	profit REAL NOT NULL,
	profit_pct REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_run ON transactions(run_id);
CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id, time);
`
