package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/mgriggs/fieldwatch/internal/config"
	"github.com/mgriggs/fieldwatch/internal/market"
	"github.com/mgriggs/fieldwatch/internal/metrics"
	"github.com/mgriggs/fieldwatch/internal/store"
)

// Engine drives the poll loop: fetch a snapshot, persist ticks, compute
// references, evaluate each symbol, and record every decision. One
// instance owns one store; cycles never overlap.
type Engine struct {
	rules    Rules
	interval time.Duration
	store    Store
	provider market.Provider
	refModel RefModel
	log      zerolog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRefModel replaces the default trailing-median reference model.
func WithRefModel(rm RefModel) Option {
	return func(e *Engine) { e.refModel = rm }
}

// New builds an engine from a validated config.
func New(cfg config.Config, st Store, provider market.Provider, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		rules:    RulesFromConfig(cfg),
		interval: cfg.PollInterval(),
		store:    st,
		provider: provider,
		refModel: TrailingMedianRef(st),
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the engine's decision parameters.
func (e *Engine) Rules() Rules { return e.rules }

// Run executes cycles at the configured interval until ctx is cancelled.
// The first cycle runs immediately. Cycle errors are surfaced in the log
// and counted, then the loop continues; shutdown only happens at the
// cycle boundary so no cycle's signal set is ever half persisted.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		if err := e.RunCycle(ctx, time.Now()); err != nil {
			metrics.CycleErrors.Inc()
			e.log.Error().Err(err).Msg("cycle failed")
		} else {
			metrics.CyclesTotal.Inc()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunCycle performs one full evaluation pass at the given wall time.
// An empty or failed fetch is a quiet cycle, not an error; persistence
// failures abort the cycle and propagate.
func (e *Engine) RunCycle(ctx context.Context, now time.Time) error {
	snap, err := e.provider.Fetch(ctx)
	if err != nil {
		// No data forces the system to remain at zero this cycle.
		e.log.Warn().Err(err).Msg("snapshot fetch failed, staying at zero")
		return nil
	}
	if len(snap) == 0 {
		e.log.Debug().Msg("empty snapshot, nothing to evaluate")
		return nil
	}

	ts := now.Unix()

	// All ticks land before any reference model reads them.
	for sym, px := range snap {
		if px <= 0 {
			continue
		}
		if err := e.store.PutTick(ts, sym, px); err != nil {
			return fmt.Errorf("persist tick: %w", err)
		}
		metrics.TicksTotal.WithLabelValues(sym).Inc()
	}

	refs, err := e.refModel(snap)
	if err != nil {
		return fmt.Errorf("reference model: %w", err)
	}

	// Symbols are independent; sorted order just keeps logs stable.
	syms := make([]string, 0, len(snap))
	for sym := range snap {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	for _, sym := range syms {
		if err := e.evaluate(ts, sym, snap[sym], refs[sym]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) evaluate(ts int64, sym string, px, ref float64) error {
	opp, ok := NewOpportunity(sym, px, ref)
	if !ok {
		return nil
	}

	ticks, err := e.store.RecentTicks(sym, volLookback)
	if err != nil {
		return fmt.Errorf("volatility history for %s: %w", sym, err)
	}
	vol := RobustVolatility(ticks)

	d := e.rules.Decide(opp, vol)

	evt := e.log.Debug()
	if d.Action != ActionFlat {
		evt = e.log.Info()
	}
	evt.Int64("ts", ts).
		Str("symbol", sym).
		Str("action", d.Action).
		Float64("px", px).
		Float64("ref", ref).
		Float64("edge", d.Edge).
		Float64("cost_zero", d.CostInaction).
		Float64("cost_act", d.CostAction).
		Str("reason", d.Reason).
		Msg("decision")

	if err := e.store.LogSignal(store.Signal{
		Ts:           ts,
		Symbol:       sym,
		Action:       d.Action,
		Edge:         d.Edge,
		CostInaction: d.CostInaction,
		CostAction:   d.CostAction,
		Reason:       d.Reason,
	}); err != nil {
		return fmt.Errorf("log signal: %w", err)
	}
	metrics.SignalsTotal.WithLabelValues(d.Action, d.Reason).Inc()
	return nil
}
