package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mgriggs/fieldwatch/internal/config"
	"github.com/mgriggs/fieldwatch/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fieldwatch",
	Short: "Adverse-to-zero mispricing signal engine",
	Long: "Fieldwatch watches market prices and emits bounded BUY/SELL/FLAT signals.\n" +
		"It acts only when the worst case of doing nothing is costlier than bounded\n" +
		"action, and never when acting could breach the hard loss ceiling.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to fieldwatch.yaml (defaults apply when omitted)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(signalsCmd)
}

// loadConfig loads .env (when present), then the YAML config with env
// overrides and validation.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		// Pick up a local fieldwatch.yaml without requiring the flag.
		if _, err := os.Stat("fieldwatch.yaml"); err == nil {
			path = "fieldwatch.yaml"
		}
	}
	return config.Load(path)
}

// openDB resolves the configured database path and opens the store.
func openDB(cfg config.Config) (*store.DB, error) {
	path := cfg.Database.Path
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path)
}
