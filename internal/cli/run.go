package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mgriggs/fieldwatch/internal/engine"
	"github.com/mgriggs/fieldwatch/internal/market"
	"github.com/mgriggs/fieldwatch/internal/metrics"
	"github.com/mgriggs/fieldwatch/internal/util"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the poll loop until interrupted",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := util.NewLogger(cfg.LogLevel)

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var provider market.Provider
	switch cfg.Snapshot.Source {
	case "http":
		provider = market.NewHTTPProvider(cfg.Snapshot.URL)
	default:
		provider = market.NewFileProvider(cfg.Snapshot.Path)
	}

	if cfg.Metrics.Enabled {
		metrics.Serve(cfg.Metrics.Addr)
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics up")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	eng := engine.New(cfg, db, provider, log)

	log.Info().
		Str("db", db.Path).
		Str("source", cfg.Snapshot.Source).
		Dur("interval", cfg.PollInterval()).
		Msg("fieldwatch started (adverse-to-zero)")

	err = eng.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("shutting down")
		return nil
	}
	return err
}
