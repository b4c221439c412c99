package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldwatch.yaml")
	body := []byte(`
poll_interval_secs: 15
min_edge_frac: 0.01
snapshot:
  source: file
  path: /tmp/prices.json
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollIntervalSecs != 15 {
		t.Errorf("PollIntervalSecs = %d, want 15", cfg.PollIntervalSecs)
	}
	if cfg.MinEdgeFrac != 0.01 {
		t.Errorf("MinEdgeFrac = %v, want 0.01", cfg.MinEdgeFrac)
	}
	// Untouched fields keep defaults.
	if cfg.HardMaxLossFrac != 0.006 {
		t.Errorf("HardMaxLossFrac = %v, want default 0.006", cfg.HardMaxLossFrac)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero poll interval", func(c *Config) { c.PollIntervalSecs = 0 }},
		{"non-positive hard bound", func(c *Config) { c.HardMaxLossFrac = 0 }},
		{"negative fee", func(c *Config) { c.FeeFrac = -0.001 }},
		{"fees exceed hard bound", func(c *Config) { c.FeeFrac = 0.004; c.SlippageFrac = 0.003 }},
		{"negative adverse pad", func(c *Config) { c.AdverseMovePad = -0.001 }},
		{"zero window", func(c *Config) { c.WindowSecs = 0 }},
		{"poll longer than window", func(c *Config) { c.PollIntervalSecs = 300; c.WindowSecs = 180 }},
		{"zero gain", func(c *Config) { c.ZeroLiabilityGain = 0 }},
		{"negative min edge", func(c *Config) { c.MinEdgeFrac = -0.001 }},
		{"unknown snapshot source", func(c *Config) { c.Snapshot.Source = "kafka" }},
		{"http source without url", func(c *Config) { c.Snapshot.Source = "http"; c.Snapshot.URL = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FIELDWATCH_DB", "/tmp/override.db")
	t.Setenv("FIELDWATCH_SNAPSHOT_URL", "http://localhost:9000/prices")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Database.Path = %q, want /tmp/override.db", cfg.Database.Path)
	}
	if cfg.Snapshot.Source != "http" || cfg.Snapshot.URL != "http://localhost:9000/prices" {
		t.Errorf("snapshot = %+v, want http override", cfg.Snapshot)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
