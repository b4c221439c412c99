// Package config exposes the fieldwatch configuration loaded from YAML,
// with environment overrides and startup validation.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all fieldwatch configuration. The decision parameters are
// fractions of notional (0.006 = 0.6%) and are immutable after Load;
// engine instances receive the struct by value.
type Config struct {
	// Cadence of the poll loop, also the numerator of the decay penalty.
	PollIntervalSecs int `yaml:"poll_interval_secs"`

	// Hard ceiling on cost-of-action. No edge overrides it.
	HardMaxLossFrac float64 `yaml:"hard_max_loss_frac"`

	FeeFrac        float64 `yaml:"fee_frac"`
	SlippageFrac   float64 `yaml:"slippage_frac"`
	AdverseMovePad float64 `yaml:"adverse_move_pad"`

	// Assumed lifetime of a detected opportunity, the denominator of the
	// decay penalty.
	WindowSecs int `yaml:"window_secs"`

	// Multiplier on cost-of-inaction. 1.0 = literal; >1 increases aversion
	// to staying flat.
	ZeroLiabilityGain float64 `yaml:"zero_liability_gain"`

	// Minimum raw edge before costs are even compared.
	MinEdgeFrac float64 `yaml:"min_edge_frac"`

	Database DatabaseConfig `yaml:"database"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Server   ServerConfig   `yaml:"server"`
	Metrics  MetricsConfig  `yaml:"metrics"`

	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // empty: resolved via store.DefaultDBPath()
}

// SnapshotConfig selects the market snapshot provider.
type SnapshotConfig struct {
	Source string `yaml:"source"` // "file" or "http"
	Path   string `yaml:"path"`   // file source: JSON file of symbol -> price
	URL    string `yaml:"url"`    // http source: endpoint returning the same shape
}

// ServerConfig configures the read-only audit API served by `fieldwatch serve`.
type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// MetricsConfig configures the optional Prometheus listener. Disabled by
// default: the run loop is outbound-only unless explicitly told otherwise.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns a Config with the stock conservative parameters.
func Default() Config {
	return Config{
		PollIntervalSecs:  30,
		HardMaxLossFrac:   0.006,
		FeeFrac:           0.0015,
		SlippageFrac:      0.0010,
		AdverseMovePad:    0.0025,
		WindowSecs:        180,
		ZeroLiabilityGain: 1.0,
		MinEdgeFrac:       0.004,
		Snapshot: SnapshotConfig{
			Source: "file",
			Path:   "prices.json",
		},
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37711,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    "127.0.0.1:9712",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults, applies environment overrides,
// and validates. An empty path skips the file and uses defaults + env only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FIELDWATCH_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("FIELDWATCH_SNAPSHOT_URL"); v != "" {
		c.Snapshot.Source = "http"
		c.Snapshot.URL = v
	}
	if v := os.Getenv("FIELDWATCH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects configurations that would make the decision rule
// degenerate. Violations are startup errors, never discovered mid-loop.
func (c *Config) Validate() error {
	if c.PollIntervalSecs <= 0 {
		return fmt.Errorf("poll_interval_secs must be positive, got %d", c.PollIntervalSecs)
	}
	if c.HardMaxLossFrac <= 0 {
		return fmt.Errorf("hard_max_loss_frac must be positive, got %v", c.HardMaxLossFrac)
	}
	if c.FeeFrac < 0 || c.SlippageFrac < 0 {
		return fmt.Errorf("fee_frac and slippage_frac must be non-negative")
	}
	if c.FeeFrac+c.SlippageFrac >= c.HardMaxLossFrac {
		// Fees alone would trip the hard bound on every evaluation.
		return fmt.Errorf("fee_frac+slippage_frac (%v) must stay below hard_max_loss_frac (%v)",
			c.FeeFrac+c.SlippageFrac, c.HardMaxLossFrac)
	}
	if c.AdverseMovePad < 0 {
		return fmt.Errorf("adverse_move_pad must be non-negative, got %v", c.AdverseMovePad)
	}
	if c.WindowSecs <= 0 {
		return fmt.Errorf("window_secs must be positive, got %d", c.WindowSecs)
	}
	if c.PollIntervalSecs > c.WindowSecs {
		// The decay cap would silently absorb this; reject it instead.
		return fmt.Errorf("poll_interval_secs (%d) must not exceed window_secs (%d)",
			c.PollIntervalSecs, c.WindowSecs)
	}
	if c.ZeroLiabilityGain <= 0 {
		return fmt.Errorf("zero_liability_gain must be positive, got %v", c.ZeroLiabilityGain)
	}
	if c.MinEdgeFrac < 0 {
		return fmt.Errorf("min_edge_frac must be non-negative, got %v", c.MinEdgeFrac)
	}
	switch c.Snapshot.Source {
	case "file":
		if c.Snapshot.Path == "" {
			return fmt.Errorf("snapshot.path required for file source")
		}
	case "http":
		if c.Snapshot.URL == "" {
			return fmt.Errorf("snapshot.url required for http source")
		}
	default:
		return fmt.Errorf("snapshot.source must be file or http, got %q", c.Snapshot.Source)
	}
	return nil
}

// PollInterval returns the loop cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSecs) * time.Second
}

// ListenAddr returns the audit API bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
