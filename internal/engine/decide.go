package engine

// Reason tags identify which rule branch produced a decision.
const (
	ReasonEdgeBelowMin = "edge<threshold"
	ReasonHardBound    = "cost_act>bound"
	ReasonEscapeZero   = "escape_zero"
	ReasonStayZero     = "stay_zero"
)

// Decision is the outcome of one evaluation with its cost diagnostics.
type Decision struct {
	Action       string
	Edge         float64
	CostInaction float64
	CostAction   float64
	Reason       string
}

// Decide applies the adverse-to-zero rule to one opportunity given the
// symbol's volatility estimate. Three gates, in order:
//
//  1. Edge gate: discrepancies below the minimum edge are noise; stay flat
//     regardless of cost math.
//  2. Hard bound: if the worst-case cost of acting exceeds the tolerated
//     loss ceiling, stay flat. No edge overrides this; cost-of-inaction is
//     not even computed.
//  3. Comparison: act only when doing nothing is strictly worse than
//     bounded action. Ties favor inaction.
//
// Decide cannot fail; garbage inputs are filtered before opportunities
// are constructed.
func (r Rules) Decide(opp Opportunity, vol float64) Decision {
	edge := opp.Edge()

	if edge < r.MinEdgeFrac {
		return Decision{Action: ActionFlat, Edge: edge, Reason: ReasonEdgeBelowMin}
	}

	costAct := r.CostOfAction(vol)
	if costAct > r.HardMaxLossFrac {
		return Decision{Action: ActionFlat, Edge: edge, CostAction: costAct, Reason: ReasonHardBound}
	}

	costZero := r.CostOfInaction(edge)
	if costZero > costAct {
		return Decision{
			Action:       opp.Side.Action(),
			Edge:         edge,
			CostInaction: costZero,
			CostAction:   costAct,
			Reason:       ReasonEscapeZero,
		}
	}
	return Decision{
		Action:       ActionFlat,
		Edge:         edge,
		CostInaction: costZero,
		CostAction:   costAct,
		Reason:       ReasonStayZero,
	}
}
