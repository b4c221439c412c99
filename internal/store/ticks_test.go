package store

import (
	"testing"
)

func TestPutTickAndRecent(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	for i, px := range []float64{100.0, 101.0, 99.5} {
		if err := db.PutTick(int64(1000+i), "BTC-AUD", px); err != nil {
			t.Fatalf("PutTick: %v", err)
		}
	}

	ticks, err := db.RecentTicks("BTC-AUD", 10)
	if err != nil {
		t.Fatalf("RecentTicks: %v", err)
	}
	if len(ticks) != 3 {
		t.Fatalf("got %d ticks, want 3", len(ticks))
	}
	// Chronological ascending
	if ticks[0].Ts != 1000 || ticks[2].Ts != 1002 {
		t.Errorf("ticks not chronological: first=%d last=%d", ticks[0].Ts, ticks[2].Ts)
	}
	if ticks[2].Price != 99.5 {
		t.Errorf("last price = %v, want 99.5", ticks[2].Price)
	}
}

func TestPutTickIdempotent(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	if err := db.PutTick(1000, "ETH-AUD", 3500); err != nil {
		t.Fatalf("PutTick: %v", err)
	}
	// Same key, same price: no error, still one row.
	if err := db.PutTick(1000, "ETH-AUD", 3500); err != nil {
		t.Fatalf("PutTick repeat: %v", err)
	}
	// Same key, new price: last write wins.
	if err := db.PutTick(1000, "ETH-AUD", 3600); err != nil {
		t.Fatalf("PutTick replace: %v", err)
	}

	count, err := db.TickCount("ETH-AUD")
	if err != nil {
		t.Fatalf("TickCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	ticks, _ := db.RecentTicks("ETH-AUD", 10)
	if ticks[0].Price != 3600 {
		t.Errorf("price = %v, want 3600 (last write wins)", ticks[0].Price)
	}
}

func TestRecentTicksLimit(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	for i := 0; i < 10; i++ {
		db.PutTick(int64(1000+i), "SOL-AUD", 100+float64(i))
	}

	ticks, err := db.RecentTicks("SOL-AUD", 3)
	if err != nil {
		t.Fatalf("RecentTicks: %v", err)
	}
	if len(ticks) != 3 {
		t.Fatalf("got %d ticks, want 3", len(ticks))
	}
	// The 3 most recent, returned oldest first.
	if ticks[0].Ts != 1007 || ticks[2].Ts != 1009 {
		t.Errorf("window = [%d..%d], want [1007..1009]", ticks[0].Ts, ticks[2].Ts)
	}
}

func TestRecentTicksUnknownSymbol(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	ticks, err := db.RecentTicks("NOPE", 10)
	if err != nil {
		t.Fatalf("RecentTicks: %v", err)
	}
	if len(ticks) != 0 {
		t.Errorf("got %d ticks for unknown symbol, want 0", len(ticks))
	}
}

func TestSymbols(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	db.PutTick(1000, "ETH-AUD", 3500)
	db.PutTick(1000, "BTC-AUD", 65000)
	db.PutTick(1001, "BTC-AUD", 65100)

	syms, err := db.Symbols()
	if err != nil {
		t.Fatalf("Symbols: %v", err)
	}
	if len(syms) != 2 {
		t.Fatalf("got %d symbols, want 2", len(syms))
	}
	if syms[0] != "BTC-AUD" || syms[1] != "ETH-AUD" {
		t.Errorf("symbols = %v, want [BTC-AUD ETH-AUD]", syms)
	}
}
