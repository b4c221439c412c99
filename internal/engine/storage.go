package engine

import (
	"github.com/mgriggs/fieldwatch/internal/store"
)

// TickReader is the read side of the tick store needed by the estimators.
type TickReader interface {
	RecentTicks(symbol string, limit int) ([]store.Tick, error)
}

// Store is the narrow persistence contract the engine runs against.
// *store.DB satisfies it; tests may substitute anything else.
type Store interface {
	TickReader
	PutTick(ts int64, symbol string, price float64) error
	LogSignal(s store.Signal) error
}
