package store

import (
	"fmt"
)

// Tick is a single price observation. (ts, symbol) is the primary key;
// rewriting the same key replaces the earlier price.
type Tick struct {
	Ts     int64
	Symbol string
	Price  float64
}

// PutTick writes or replaces the price for (ts, symbol). The write is
// committed before return so readers in the same cycle see it.
func (db *DB) PutTick(ts int64, symbol string, price float64) error {
	_, err := db.Exec(`
		INSERT INTO ticks (ts, symbol, price) VALUES (?, ?, ?)
		ON CONFLICT(ts, symbol) DO UPDATE SET price = excluded.price
	`, ts, symbol, price)
	if err != nil {
		return fmt.Errorf("put tick %s@%d: %w", symbol, ts, err)
	}
	return nil
}

// RecentTicks returns up to limit most recent ticks for a symbol in
// chronological order (oldest first). Unknown symbols yield an empty slice.
func (db *DB) RecentTicks(symbol string, limit int) ([]Tick, error) {
	rows, err := db.Query(`
		SELECT ts, symbol, price FROM ticks
		WHERE symbol = ? ORDER BY ts DESC LIMIT ?
	`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("recent ticks: %w", err)
	}
	defer rows.Close()

	var ticks []Tick
	for rows.Next() {
		var t Tick
		if err := rows.Scan(&t.Ts, &t.Symbol, &t.Price); err != nil {
			return nil, fmt.Errorf("scan tick: %w", err)
		}
		ticks = append(ticks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Selected newest-first; flip to chronological.
	for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
		ticks[i], ticks[j] = ticks[j], ticks[i]
	}
	return ticks, nil
}

// Symbols returns the distinct symbols present in the tick store.
func (db *DB) Symbols() ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT symbol FROM ticks ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	defer rows.Close()

	var syms []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		syms = append(syms, s)
	}
	return syms, rows.Err()
}

// TickCount returns the number of ticks stored for a symbol.
func (db *DB) TickCount(symbol string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM ticks WHERE symbol = ?`, symbol).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ticks: %w", err)
	}
	return count, nil
}
