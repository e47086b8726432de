package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string `toml:"environment"`

	// Server
	Port        string `toml:"port"`
	FrontendURL string `toml:"frontend_url"`

	// Redis event bus; empty disables it
	RedisURL     string `toml:"redis_url"`
	EventChannel string `toml:"event_channel"`

	// Board
	ScreenWidth  int    `toml:"screen_width"`
	ScreenHeight int    `toml:"screen_height"`
	Seed         uint64 `toml:"seed"` // 0 seeds from the clock

	// Host loop
	TickHz         int  `toml:"tick_hz"`
	BroadcastEvery int  `toml:"broadcast_every"`
	AutoSpawn      bool `toml:"auto_spawn"`
}

func defaults() *Config {
	return &Config{
		Environment:    "development",
		Port:           "8080",
		FrontendURL:    "http://localhost:5173",
		EventChannel:   "tinko_events",
		ScreenWidth:    800,
		ScreenHeight:   600,
		TickHz:         60,
		BroadcastEvery: 1,
		AutoSpawn:      true,
	}
}

// Load reads an optional TOML file named by TINKO_CONFIG, then applies
// environment overrides (including a .env file if present).
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("TINKO_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Environment = getEnv("APP_ENV", cfg.Environment)
	cfg.Port = getEnv("APP_PORT", cfg.Port)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.EventChannel = getEnv("EVENT_CHANNEL", cfg.EventChannel)
	cfg.ScreenWidth = getEnvInt("SCREEN_WIDTH", cfg.ScreenWidth)
	cfg.ScreenHeight = getEnvInt("SCREEN_HEIGHT", cfg.ScreenHeight)
	cfg.Seed = getEnvUint("SEED", cfg.Seed)
	cfg.TickHz = getEnvInt("TICK_HZ", cfg.TickHz)
	cfg.BroadcastEvery = getEnvInt("BROADCAST_EVERY", cfg.BroadcastEvery)
	cfg.AutoSpawn = getEnvBool("AUTO_SPAWN", cfg.AutoSpawn)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the board cannot run with.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickHz <= 0 {
		return fmt.Errorf("invalid tick rate %d", c.TickHz)
	}
	if c.BroadcastEvery <= 0 {
		return fmt.Errorf("invalid broadcast interval %d", c.BroadcastEvery)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
