package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgriggs/fieldwatch/internal/store"
)

var (
	signalsLimit  int
	signalsSymbol string
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Print recent decisions from the signal log",
	RunE:  runSignals,
}

func init() {
	signalsCmd.Flags().IntVarP(&signalsLimit, "limit", "n", 20, "number of signals to print")
	signalsCmd.Flags().StringVarP(&signalsSymbol, "symbol", "s", "", "restrict to one symbol")
}

func runSignals(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var sigs []store.Signal
	if signalsSymbol != "" {
		sigs, err = db.SignalsBySymbol(signalsSymbol, signalsLimit)
	} else {
		sigs, err = db.RecentSignals(signalsLimit)
	}
	if err != nil {
		return fmt.Errorf("query signals: %w", err)
	}

	if len(sigs) == 0 {
		fmt.Println("no signals recorded")
		return nil
	}

	for _, s := range sigs {
		ts := time.Unix(s.Ts, 0).UTC().Format(time.RFC3339)
		fmt.Printf("%s  %-10s %-4s edge=%.4f cost0=%.4f costA=%.4f  %s\n",
			ts, s.Symbol, s.Action, s.Edge, s.CostInaction, s.CostAction, s.Reason)
	}
	return nil
}
