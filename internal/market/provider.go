// Package market supplies snapshot providers: sources of the latest price
// per symbol. Providers are the system's only inbound data boundary; the
// engine treats an empty snapshot as a quiet cycle, not an error.
package market

import (
	"context"
	"encoding/json"
	"strconv"
)

// Snapshot maps symbol to its latest observed price.
type Snapshot map[string]float64

// Provider fetches the current market snapshot. An empty snapshot means no
// data is available this cycle.
type Provider interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context) (Snapshot, error)

func (f ProviderFunc) Fetch(ctx context.Context) (Snapshot, error) { return f(ctx) }

// parseSnapshot decodes a JSON object of symbol -> price. Prices may be
// numbers or numeric strings; entries that parse to nothing usable are
// skipped rather than failing the whole snapshot.
func parseSnapshot(data []byte) (Snapshot, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	snap := make(Snapshot, len(raw))
	for sym, v := range raw {
		if sym == "" {
			continue
		}
		switch px := v.(type) {
		case float64:
			snap[sym] = px
		case string:
			f, err := strconv.ParseFloat(px, 64)
			if err != nil {
				continue
			}
			snap[sym] = f
		}
	}
	return snap, nil
}
