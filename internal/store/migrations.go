package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "ticks: price observations keyed by (ts, symbol)",
		SQL: `
CREATE TABLE ticks (
    ts     INTEGER NOT NULL,
    symbol TEXT NOT NULL,
    price  REAL NOT NULL,
    PRIMARY KEY (ts, symbol)
);

CREATE INDEX idx_ticks_symbol_ts ON ticks(symbol, ts DESC);
`,
	},
	{
		Version:     2,
		Description: "signals: append-only decision audit trail",
		SQL: `
CREATE TABLE signals (
    ts        INTEGER NOT NULL,
    symbol    TEXT NOT NULL,
    action    TEXT NOT NULL CHECK (action IN ('BUY', 'SELL', 'FLAT')),
    edge      REAL NOT NULL,
    cost_zero REAL NOT NULL,
    cost_act  REAL NOT NULL,
    reason    TEXT NOT NULL
);

CREATE INDEX idx_signals_ts     ON signals(ts DESC);
CREATE INDEX idx_signals_symbol ON signals(symbol, ts DESC);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
