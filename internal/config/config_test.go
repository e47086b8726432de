package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TINKO_CONFIG", "")
	t.Setenv("SCREEN_WIDTH", "")
	t.Setenv("TICK_HZ", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScreenWidth != 800 || cfg.ScreenHeight != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.TickHz != 60 || cfg.BroadcastEvery != 1 {
		t.Errorf("tick=%d broadcast=%d", cfg.TickHz, cfg.BroadcastEvery)
	}
}

func TestFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tinko.toml")
	body := "screen_width = 1024\ntick_hz = 30\nseed = 99\nauto_spawn = false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TINKO_CONFIG", path)
	t.Setenv("TICK_HZ", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScreenWidth != 1024 {
		t.Errorf("screen width = %d, want 1024 from file", cfg.ScreenWidth)
	}
	if cfg.TickHz != 120 {
		t.Errorf("tick rate = %d, want env override 120", cfg.TickHz)
	}
	if cfg.Seed != 99 || cfg.AutoSpawn {
		t.Errorf("seed=%d autospawn=%v", cfg.Seed, cfg.AutoSpawn)
	}
}

func TestMissingFileIsAnError(t *testing.T) {
	t.Setenv("TINKO_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := Load(); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestValidateRejectsBadSize(t *testing.T) {
	cfg := defaults()
	cfg.ScreenWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero width accepted")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative height", func(c *Config) { c.ScreenHeight = -1 }},
		{"zero tick rate", func(c *Config) { c.TickHz = 0 }},
		{"zero broadcast interval", func(c *Config) { c.BroadcastEvery = 0 }},
		{"negative broadcast interval", func(c *Config) { c.BroadcastEvery = -3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.edit(cfg)
			before := *cfg
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
			if *cfg != before {
				t.Errorf("Validate modified the config: %+v", *cfg)
			}
		})
	}

	if err := defaults().Validate(); err != nil {
		t.Errorf("defaults rejected: %v", err)
	}
}

func TestLoadRejectsZeroBroadcastInterval(t *testing.T) {
	t.Setenv("TINKO_CONFIG", "")
	t.Setenv("BROADCAST_EVERY", "0")
	if _, err := Load(); err == nil {
		t.Error("Load accepted BROADCAST_EVERY=0")
	}
}
