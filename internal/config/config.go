// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for finassist.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.finassist/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete finassist configuration.
type Config struct {
	Version string `toml:"version"`

	// Market data configuration
	Market MarketConfig `toml:"market"`

	// Assistant behavior configuration
	Assistant AssistantConfig `toml:"assistant"`

	// Local (Ollama) configuration for the generative fallback
	Local LocalConfig `toml:"local"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// MarketConfig contains market-data provider configuration.
type MarketConfig struct {
	// BaseURL is the quote provider's chart API base URL
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
	// RequestsPerSecond caps outbound quote requests (rate limiter)
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// AssistantConfig controls the question-answering behavior.
type AssistantConfig struct {
	// LLMFallback enables the generative fallback for questions no
	// deterministic branch can answer. Requires a running Ollama.
	LLMFallback bool `toml:"llm_fallback"`
	// DefaultTermYears is the loan/investment term assumed when the
	// question names none.
	DefaultTermYears int `toml:"default_term_years"`
}

// LocalConfig contains local Ollama configuration.
type LocalConfig struct {
	// OllamaURL is the URL of the Ollama server
	OllamaURL string `toml:"ollama_url"`
	// OllamaModel is the model used for the generative fallback
	OllamaModel string `toml:"ollama_model"`
}

// StorageConfig contains persistence configuration.
type StorageConfig struct {
	// FactsPath is the SQLite database for persistent facts
	// (empty = <config dir>/facts.db)
	FactsPath string `toml:"facts_path"`
	// MaxConversations limits stored transcripts (0 = unlimited)
	MaxConversations int `toml:"max_conversations"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Markdown enables glamour markdown rendering of answers
	Markdown bool `toml:"markdown"`
	// Charts enables terminal chart rendering
	Charts bool `toml:"charts"`
	// ChartWidth overrides the detected terminal width (0 = auto)
	ChartWidth int `toml:"chart_width"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Market: MarketConfig{
			BaseURL:           "https://query1.finance.yahoo.com",
			TimeoutSecs:       10,
			RequestsPerSecond: 2,
		},
		Assistant: AssistantConfig{
			LLMFallback:      false,
			DefaultTermYears: 30,
		},
		Local: LocalConfig{
			OllamaURL:   "http://127.0.0.1:11434",
			OllamaModel: "llama3.2:3b",
		},
		Storage: StorageConfig{
			MaxConversations: 100,
		},
		UI: UIConfig{
			Markdown: true,
			Charts:   true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the finassist configuration directory (~/.finassist).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".finassist"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// FactsDBPath resolves the persistent fact database path.
func (c *Config) FactsDBPath() (string, error) {
	if c.Storage.FactsPath != "" {
		return c.Storage.FactsPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "facts.db"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads configuration from disk, falling back to defaults when no file
// exists. Environment overrides are applied after file values.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decodeErr := toml.DecodeFile(path, cfg); decodeErr != nil {
				return Default(), fmt.Errorf("failed to parse %s: %w", path, decodeErr)
			}
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration to the default TOML path.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FINASSIST_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	// FINASSIST_MARKET_URL
	if u := os.Getenv("FINASSIST_MARKET_URL"); u != "" {
		c.Market.BaseURL = u
	}

	// FINASSIST_OLLAMA_URL
	if u := os.Getenv("FINASSIST_OLLAMA_URL"); u != "" {
		c.Local.OllamaURL = u
	}

	// FINASSIST_MODEL
	if model := os.Getenv("FINASSIST_MODEL"); model != "" {
		c.Local.OllamaModel = model
	}

	// FINASSIST_LLM_FALLBACK
	if fb := os.Getenv("FINASSIST_LLM_FALLBACK"); fb != "" {
		c.Assistant.LLMFallback = fb == "1" || strings.ToLower(fb) == "true"
	}

	// FINASSIST_FACTS_DB
	if path := os.Getenv("FINASSIST_FACTS_DB"); path != "" {
		c.Storage.FactsPath = path
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values, normalizing where a
// safe default exists.
func (c *Config) Validate() error {
	if _, err := url.Parse(c.Market.BaseURL); err != nil || c.Market.BaseURL == "" {
		return fmt.Errorf("invalid market.base_url: %q", c.Market.BaseURL)
	}
	if _, err := url.Parse(c.Local.OllamaURL); err != nil || c.Local.OllamaURL == "" {
		return fmt.Errorf("invalid local.ollama_url: %q", c.Local.OllamaURL)
	}

	if c.Market.TimeoutSecs <= 0 {
		c.Market.TimeoutSecs = 10
	}
	if c.Market.RequestsPerSecond <= 0 {
		c.Market.RequestsPerSecond = 2
	}
	if c.Assistant.DefaultTermYears <= 0 {
		c.Assistant.DefaultTermYears = 30
	}
	if c.Storage.MaxConversations < 0 {
		c.Storage.MaxConversations = 0
	}
	return nil
}

// MarketTimeout returns the market request timeout as a duration.
func (c *Config) MarketTimeout() time.Duration {
	return time.Duration(c.Market.TimeoutSecs) * time.Second
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
