package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mgriggs/fieldwatch/internal/store"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func limitParam(r *http.Request) int {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r)

	var (
		sigs []store.Signal
		err  error
	)
	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		sigs, err = s.db.SignalsBySymbol(symbol, limit)
	} else {
		sigs, err = s.db.RecentSignals(limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query signals failed")
		return
	}
	if sigs == nil {
		sigs = []store.Signal{}
	}
	writeJSON(w, http.StatusOK, sigs)
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	syms, err := s.db.Symbols()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query symbols failed")
		return
	}
	if syms == nil {
		syms = []string{}
	}
	writeJSON(w, http.StatusOK, syms)
}

func (s *Server) handleTicks(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol required")
		return
	}

	ticks, err := s.db.RecentTicks(symbol, limitParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query ticks failed")
		return
	}

	type tickJSON struct {
		Ts     int64   `json:"ts"`
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}
	out := make([]tickJSON, len(ticks))
	for i, t := range ticks {
		out[i] = tickJSON{Ts: t.Ts, Symbol: t.Symbol, Price: t.Price}
	}
	writeJSON(w, http.StatusOK, out)
}
