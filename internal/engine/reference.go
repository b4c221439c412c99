package engine

import (
	"fmt"
	"sort"

	"github.com/mgriggs/fieldwatch/internal/market"
	"github.com/mgriggs/fieldwatch/internal/store"
)

const (
	refLookback = 60 // ticks fed into the trailing median
	refMinTicks = 15 // below this, reference = observed (no opportunity)
)

// RefModel computes a fair-value reference price per symbol from the
// current snapshot. The decision rule is agnostic to how the reference
// was derived; callers may substitute any predictor with this signature.
type RefModel func(snap market.Snapshot) (map[string]float64, error)

// TrailingMedianRef returns the default reference model: the median of
// each symbol's recent stored prices. Symbols with thin history fall back
// to the observed price, which yields zero edge downstream.
func TrailingMedianRef(st TickReader) RefModel {
	return func(snap market.Snapshot) (map[string]float64, error) {
		refs := make(map[string]float64, len(snap))
		for sym, px := range snap {
			ticks, err := st.RecentTicks(sym, refLookback)
			if err != nil {
				return nil, fmt.Errorf("reference for %s: %w", sym, err)
			}
			if len(ticks) < refMinTicks {
				refs[sym] = px
				continue
			}
			refs[sym] = medianPrice(ticks)
		}
		return refs, nil
	}
}

func medianPrice(ticks []store.Tick) float64 {
	vals := make([]float64, len(ticks))
	for i, t := range ticks {
		vals[i] = t.Price
	}
	sort.Float64s(vals)
	return vals[len(vals)/2]
}
