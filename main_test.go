package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routemock/routemock/internal/analyzer"
	"github.com/routemock/routemock/internal/logger"
	"github.com/routemock/routemock/internal/server"
)

func TestEndToEnd(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "users.ts"), []byte(`
// route /users
interface User {
	id: number;
	name: string;
	active: boolean;
}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.ts"), []byte(`
// route /x
interface X {
	a: number;
	b: string[];
}
`), 0644))

	log := logger.NewTestLogger(t)

	catalog, err := analyzer.New(root, log).Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	ts := httptest.NewServer(server.New(catalog, log).Handler())
	defer ts.Close()

	// /users serves all three primitive properties in declaration order
	resp, err := http.Get(ts.URL + "/users")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		key, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, key.(string))

		_, err = dec.Token()
		require.NoError(t, err)
	}
	require.Equal(t, []string{"id", "name", "active"}, keys)

	// /x drops the unsupported array property and serves only "a"
	resp, err = http.Get(ts.URL + "/x")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload, 1)
	require.IsType(t, float64(0), payload["a"])
}
