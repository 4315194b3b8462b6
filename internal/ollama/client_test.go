// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		DefaultModel: "test-model",
	})
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "diversification")

		json.NewEncoder(w).Encode(generateResponse{
			Model:    req.Model,
			Response: "A diversified portfolio spreads risk across asset classes.",
			Done:     true,
		})
	}))
	defer srv.Close()

	out, err := testClient(srv.URL).Generate(context.Background(), "", "Explain diversification")
	require.NoError(t, err)
	assert.Equal(t, "A diversified portfolio spreads risk across asset classes.", out)
}

func TestGenerateModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "missing", "hi")
	assert.True(t, errors.Is(err, ErrModelNotFound))
}

func TestGenerateNotRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "", "hi")
	assert.True(t, errors.Is(err, ErrNotRunning))
}

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	}))
	defer srv.Close()

	assert.NoError(t, testClient(srv.URL).CheckRunning(context.Background()))
}
