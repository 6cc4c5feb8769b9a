// Package config loads and saves the flightpath TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/flightpath/internal/engine"
	"github.com/theirongolddev/flightpath/internal/model"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "FLIGHTPATH_CONFIG"

// Config holds all flightpath configuration.
type Config struct {
	Plan       PlanConfig       `toml:"plan"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Engines    EngineConfig     `toml:"engines"`
}

// PlanConfig is the saved investment plan.
type PlanConfig struct {
	Initial      float64 `toml:"initial"`
	Monthly      float64 `toml:"monthly"`
	Engine       string  `toml:"engine"`
	Goal         float64 `toml:"goal"`
	HorizonYears int     `toml:"horizon_years,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr      string `toml:"addr"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // "text" or "json"
}

// EngineConfig allows user-defined return profiles.
type EngineConfig struct {
	Overrides map[string]engine.Override `toml:"overrides,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Plan: PlanConfig{
			Initial: 10_000,
			Monthly: 500,
			Engine:  engine.DefaultEngine,
			Goal:    1_000_000,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8787",
			LogLevel:  "info",
			LogFormat: "text",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flightpath")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flightpath")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
// Keys absent from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveFile writes the config to path with owner-only permissions.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-supplied config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Params converts the saved plan into projection parameters.
func (c Config) Params() model.Params {
	return model.Params{
		InitialInvestment: c.Plan.Initial,
		MonthlyInvestment: c.Plan.Monthly,
		Engine:            model.EngineType(c.Plan.Engine),
		Goal:              c.Plan.Goal,
		HorizonYears:      c.Plan.HorizonYears,
	}
}

// SetParams stores p as the saved plan.
func (c *Config) SetParams(p model.Params) {
	c.Plan = PlanConfig{
		Initial:      p.InitialInvestment,
		Monthly:      p.MonthlyInvestment,
		Engine:       string(p.Engine),
		Goal:         p.Goal,
		HorizonYears: p.HorizonYears,
	}
}

// Catalog builds the engine catalog including user overrides.
func (c Config) Catalog() *engine.Catalog {
	if len(c.Engines.Overrides) == 0 {
		return engine.Default
	}
	return engine.NewCatalog(c.Engines.Overrides)
}

// Validate bounds-checks the plan and engine overrides and checks that the
// plan's engine exists.
func (c Config) Validate() error {
	names := make([]string, 0, len(c.Engines.Overrides))
	for name := range c.Engines.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.Engines.Overrides[name].Validate(); err != nil {
			return fmt.Errorf("engines.overrides.%s: %w", name, err)
		}
	}
	if err := engine.Validate(c.Params()); err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	if _, ok := c.Catalog().Lookup(c.Plan.Engine); !ok {
		return fmt.Errorf("plan: engine %q: %w", c.Plan.Engine, engine.ErrUnknownEngine)
	}
	switch c.Server.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("server: unknown log format %q", c.Server.LogFormat)
	}
	return nil
}
