package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	entry_time TEXT NOT NULL,
	exit_time TEXT NOT NULL,
	qty INTEGER NOT NULL,
	pnl REAL NOT NULL,
	pnl_ticks REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_trades_exit_time ON trades(exit_time);

CREATE TABLE IF NOT EXISTS daily_notes (
	date TEXT PRIMARY KEY,
	note TEXT NOT NULL
);
`
