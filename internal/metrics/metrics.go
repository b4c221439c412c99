// Package metrics exposes Prometheus collectors for the poll loop.
// Serving them is opt-in; the default run process listens on nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fieldwatch_ticks_total", Help: "Count of price ticks persisted"},
		[]string{"symbol"},
	)
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fieldwatch_signals_total", Help: "Decisions logged, by action and rule branch"},
		[]string{"action", "reason"},
	)
	CyclesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fieldwatch_cycles_total", Help: "Completed evaluation cycles"},
	)
	CycleErrors = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fieldwatch_cycle_errors_total", Help: "Cycles aborted by persistence or snapshot errors"},
	)
)

func init() {
	prometheus.MustRegister(TicksTotal, SignalsTotal, CyclesTotal, CycleErrors)
}

// Serve starts the metrics listener on addr in the background.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
