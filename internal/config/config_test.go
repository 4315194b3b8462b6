// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Assistant.DefaultTermYears)
	assert.False(t, cfg.Assistant.LLMFallback)
	assert.True(t, cfg.UI.Charts)
	assert.NotEmpty(t, cfg.Market.BaseURL)
}

func TestValidateNormalizesZeroValues(t *testing.T) {
	cfg := Default()
	cfg.Market.TimeoutSecs = 0
	cfg.Market.RequestsPerSecond = -1
	cfg.Assistant.DefaultTermYears = 0

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Market.TimeoutSecs)
	assert.Equal(t, 2.0, cfg.Market.RequestsPerSecond)
	assert.Equal(t, 30, cfg.Assistant.DefaultTermYears)
}

func TestValidateRejectsEmptyURLs(t *testing.T) {
	cfg := Default()
	cfg.Market.BaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Local.OllamaURL = ""
	assert.Error(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINASSIST_MARKET_URL", "http://localhost:9999")
	t.Setenv("FINASSIST_MODEL", "llama3.2:1b")
	t.Setenv("FINASSIST_LLM_FALLBACK", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://localhost:9999", cfg.Market.BaseURL)
	assert.Equal(t, "llama3.2:1b", cfg.Local.OllamaModel)
	assert.True(t, cfg.Assistant.LLMFallback)
}

func TestTOMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Market.BaseURL = "http://example.test"
	cfg.Assistant.LLMFallback = true

	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(cfg))

	decoded := Default()
	_, err := toml.Decode(buf.String(), decoded)
	require.NoError(t, err)

	assert.Equal(t, cfg.Market.BaseURL, decoded.Market.BaseURL)
	assert.Equal(t, cfg.Assistant.LLMFallback, decoded.Assistant.LLMFallback)
	assert.Equal(t, cfg.UI, decoded.UI)
}
