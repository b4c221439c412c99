package engine

import (
	"math"
	"sort"

	"github.com/mgriggs/fieldwatch/internal/store"
)

const (
	volLookback   = 120 // ticks fed into the estimator
	volMinTicks   = 20  // below this, assume no extra volatility pad
	volMinReturns = 10  // valid consecutive returns required
)

// RobustVolatility estimates the typical short-horizon fractional move
// from chronological ticks: the median absolute log return between
// consecutive positive prices, mapped back to a fraction. An order
// statistic, not a variance, so one spiked tick cannot dominate it.
// Too little history degrades to 0; the fixed adverse pad still applies.
func RobustVolatility(ticks []store.Tick) float64 {
	if len(ticks) < volMinTicks {
		return 0
	}

	rets := make([]float64, 0, len(ticks)-1)
	for i := 1; i < len(ticks); i++ {
		p0, p1 := ticks[i-1].Price, ticks[i].Price
		if p0 <= 0 || p1 <= 0 {
			continue
		}
		rets = append(rets, math.Abs(math.Log(p1/p0)))
	}
	if len(rets) < volMinReturns {
		return 0
	}

	sort.Float64s(rets)
	med := rets[len(rets)/2]
	frac := math.Exp(med) - 1.0
	return math.Max(0, frac)
}
