package engine

import (
	"math"

	"github.com/mgriggs/fieldwatch/internal/config"
)

// Rules bundles the immutable decision parameters. Built once from config
// at startup; independent engine instances may carry different rules.
type Rules struct {
	HardMaxLossFrac   float64
	FeeFrac           float64
	SlippageFrac      float64
	AdverseMovePad    float64
	ZeroLiabilityGain float64
	MinEdgeFrac       float64
	PollIntervalSecs  int
	WindowSecs        int
}

// RulesFromConfig extracts the decision parameters from a validated config.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		HardMaxLossFrac:   cfg.HardMaxLossFrac,
		FeeFrac:           cfg.FeeFrac,
		SlippageFrac:      cfg.SlippageFrac,
		AdverseMovePad:    cfg.AdverseMovePad,
		ZeroLiabilityGain: cfg.ZeroLiabilityGain,
		MinEdgeFrac:       cfg.MinEdgeFrac,
		PollIntervalSecs:  cfg.PollIntervalSecs,
		WindowSecs:        cfg.WindowSecs,
	}
}

// CostOfAction is the worst-case fractional loss of acting now: fees,
// slippage, and an adverse-move pad. The pad takes the worse of the fixed
// floor and twice the volatility estimate: two windows of typical
// movement covers an adverse move across entry and exit.
func (r Rules) CostOfAction(vol float64) float64 {
	adverse := math.Max(r.AdverseMovePad, 2.0*vol)
	return r.FeeFrac + r.SlippageFrac + adverse
}

// CostOfInaction is the worst-case fractional loss of staying flat: the
// visible edge vanishes before the next poll. The decay penalty scales by
// how much of the opportunity window one poll interval consumes, capped
// at 1 so inaction never costs more than double the raw edge.
func (r Rules) CostOfInaction(edge float64) float64 {
	e := math.Max(0, edge)
	decay := math.Min(1.0, float64(r.PollIntervalSecs)/math.Max(1.0, float64(r.WindowSecs)))
	return r.ZeroLiabilityGain * e * (1.0 + decay)
}
