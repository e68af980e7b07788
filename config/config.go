// Package config loads run configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/damienborowski/AlphaFinity-v2/strategies"
)

// Config is the complete run configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
}

// StrategyConfig selects the strategy and its indicator parameters.
type StrategyConfig struct {
	Name string `json:"name" yaml:"name"`

	EMAPeriod int `json:"ema_period,omitempty" yaml:"ema_period,omitempty"`
	RSIPeriod int `json:"rsi_period,omitempty" yaml:"rsi_period,omitempty"`

	EMAThreshold     float64 `json:"ema_threshold,omitempty" yaml:"ema_threshold,omitempty"`
	RSIBuyThreshold  float64 `json:"rsi_buy_threshold,omitempty" yaml:"rsi_buy_threshold,omitempty"`
	RSISellThreshold float64 `json:"rsi_sell_threshold,omitempty" yaml:"rsi_sell_threshold,omitempty"`
	TakeProfitPct    float64 `json:"take_profit_pct,omitempty" yaml:"take_profit_pct,omitempty"`
}

// Settings maps the strategy section onto the tunables ByName accepts.
func (s StrategyConfig) Settings() strategies.Settings {
	return strategies.Settings{
		EMAThreshold:     s.EMAThreshold,
		RSIBuyThreshold:  s.RSIBuyThreshold,
		RSISellThreshold: s.RSISellThreshold,
		TakeProfitPct:    s.TakeProfitPct,
	}
}

// JournalConfig controls run persistence.
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file. YAML is tried first, JSON
// as a fallback.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Account.StartingCapital < 0 {
		return fmt.Errorf("account.starting_capital must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.Strategy.Name)) {
	case "", "buy-and-hold", "buyandhold", "ema-cross", "emacross", "ema", "rsi", "rsi-reversion":
	default:
		return fmt.Errorf("unknown strategy: %s", c.Strategy.Name)
	}
	if c.Strategy.EMAPeriod <= 0 || c.Strategy.RSIPeriod <= 0 {
		return fmt.Errorf("indicator periods must be positive")
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required when journal is enabled")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			StartingCapital: 1000.0,
		},
		Strategy: StrategyConfig{
			Name:             "buy-and-hold",
			EMAPeriod:        100,
			RSIPeriod:        14,
			RSIBuyThreshold:  25,
			RSISellThreshold: 75,
			TakeProfitPct:    2.0,
		},
		Journal: JournalConfig{
			Enabled: false,
			DBPath:  "./alphafinity.sqlite",
		},
	}
}
