package store

import (
	"fmt"
)

// Signal is one decision record: what the engine chose for a symbol in a
// cycle and the cost inputs behind it. Rows are append-only.
type Signal struct {
	Ts           int64   `json:"ts"`
	Symbol       string  `json:"symbol"`
	Action       string  `json:"action"`
	Edge         float64 `json:"edge"`
	CostInaction float64 `json:"cost_zero"`
	CostAction   float64 `json:"cost_act"`
	Reason       string  `json:"reason"`
}

// LogSignal appends a decision to the signal log.
func (db *DB) LogSignal(s Signal) error {
	_, err := db.Exec(`
		INSERT INTO signals (ts, symbol, action, edge, cost_zero, cost_act, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.Ts, s.Symbol, s.Action, s.Edge, s.CostInaction, s.CostAction, s.Reason)
	if err != nil {
		return fmt.Errorf("log signal %s@%d: %w", s.Symbol, s.Ts, err)
	}
	return nil
}

// RecentSignals returns the most recent signals across all symbols,
// newest first.
func (db *DB) RecentSignals(limit int) ([]Signal, error) {
	return db.querySignals(`
		SELECT ts, symbol, action, edge, cost_zero, cost_act, reason
		FROM signals ORDER BY ts DESC, rowid DESC LIMIT ?
	`, limit)
}

// SignalsBySymbol returns the most recent signals for one symbol,
// newest first.
func (db *DB) SignalsBySymbol(symbol string, limit int) ([]Signal, error) {
	return db.querySignals(`
		SELECT ts, symbol, action, edge, cost_zero, cost_act, reason
		FROM signals WHERE symbol = ? ORDER BY ts DESC, rowid DESC LIMIT ?
	`, symbol, limit)
}

func (db *DB) querySignals(query string, args ...any) ([]Signal, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer rows.Close()

	var sigs []Signal
	for rows.Next() {
		var s Signal
		if err := rows.Scan(&s.Ts, &s.Symbol, &s.Action, &s.Edge, &s.CostInaction, &s.CostAction, &s.Reason); err != nil {
			return nil, fmt.Errorf("scan signal: %w", err)
		}
		sigs = append(sigs, s)
	}
	return sigs, rows.Err()
}
