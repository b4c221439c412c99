package engine

import (
	"math"
	"testing"
)

func testRules() Rules {
	return Rules{
		HardMaxLossFrac:   0.006,
		FeeFrac:           0.0015,
		SlippageFrac:      0.0010,
		AdverseMovePad:    0.0025,
		ZeroLiabilityGain: 1.0,
		MinEdgeFrac:       0.004,
		PollIntervalSecs:  30,
		WindowSecs:        180,
	}
}

func TestCostOfActionFixedPadDominates(t *testing.T) {
	r := testRules()
	// vol 0.0005 -> 2*vol = 0.001 < fixed pad 0.0025
	got := r.CostOfAction(0.0005)
	want := 0.0015 + 0.0010 + 0.0025
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("cost of action = %v, want %v", got, want)
	}
}

func TestCostOfActionVolPadDominates(t *testing.T) {
	r := testRules()
	// vol 0.005 -> 2*vol = 0.01 > fixed pad
	got := r.CostOfAction(0.005)
	want := 0.0015 + 0.0010 + 0.01
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("cost of action = %v, want %v", got, want)
	}
}

func TestCostOfInactionDecay(t *testing.T) {
	r := testRules()
	// poll 30 / window 180 -> decay 1/6
	got := r.CostOfInaction(0.005)
	want := 1.0 * 0.005 * (1.0 + 30.0/180.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("cost of inaction = %v, want %v", got, want)
	}
}

func TestCostOfInactionDecayCapped(t *testing.T) {
	r := testRules()
	r.PollIntervalSecs = 180
	r.WindowSecs = 180
	// decay caps at 1: never more than doubling the raw edge.
	got := r.CostOfInaction(0.01)
	if math.Abs(got-0.02) > 1e-12 {
		t.Errorf("cost of inaction = %v, want 0.02 at the decay cap", got)
	}
}

func TestCostOfInactionNegativeEdgeClamped(t *testing.T) {
	r := testRules()
	if got := r.CostOfInaction(-0.05); got != 0 {
		t.Errorf("cost of inaction = %v, want 0 for negative edge", got)
	}
}

func TestCostOfInactionGain(t *testing.T) {
	r := testRules()
	r.ZeroLiabilityGain = 2.0
	base := testRules().CostOfInaction(0.005)
	if got := r.CostOfInaction(0.005); math.Abs(got-2*base) > 1e-12 {
		t.Errorf("cost of inaction = %v, want %v with gain 2", got, 2*base)
	}
}

func TestCostOfInactionMonotonicInEdge(t *testing.T) {
	r := testRules()
	prev := -1.0
	for _, e := range []float64{0, 0.001, 0.004, 0.01, 0.05, 0.5} {
		got := r.CostOfInaction(e)
		if got < prev {
			t.Fatalf("cost of inaction decreased: edge %v gave %v after %v", e, got, prev)
		}
		prev = got
	}
}
