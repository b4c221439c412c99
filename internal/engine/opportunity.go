// Package engine implements the adverse-to-zero decision core: robust
// volatility estimation, the trailing-median reference model, the two
// worst-case cost models, and the gated decision rule that compares them.
package engine

// Side is the direction of a detected opportunity.
type Side int

const (
	Buy Side = iota
	Sell
)

// Action constants match the persisted signal schema.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionFlat = "FLAT"
)

// Action returns the signal action string for the side.
func (s Side) Action() string {
	if s == Sell {
		return ActionSell
	}
	return ActionBuy
}

// Opportunity pairs an observed price with a reference price and the side
// that would exploit the gap. It lives for one evaluation cycle only.
type Opportunity struct {
	Symbol   string
	Price    float64
	RefPrice float64
	Side     Side
}

// NewOpportunity derives an opportunity from an observed and a reference
// price: cheap relative to reference means Buy, expensive means Sell.
// Returns false when no opportunity exists: non-positive prices or an
// exact match carry no directional information.
func NewOpportunity(symbol string, price, refPrice float64) (Opportunity, bool) {
	if price <= 0 || refPrice <= 0 || price == refPrice {
		return Opportunity{}, false
	}
	side := Buy
	if price > refPrice {
		side = Sell
	}
	return Opportunity{Symbol: symbol, Price: price, RefPrice: refPrice, Side: side}, true
}

// Edge is the signed relative discrepancy from the perspective of acting
// on the opportunity's side: positive when the price is in your favor.
func (o Opportunity) Edge() float64 {
	if o.RefPrice <= 0 {
		return 0
	}
	if o.Side == Buy {
		return (o.RefPrice - o.Price) / o.RefPrice
	}
	return (o.Price - o.RefPrice) / o.RefPrice
}
