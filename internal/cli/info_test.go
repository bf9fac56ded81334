package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neocapy/friend-reader/internal/domain"
)

func testServer(t *testing.T, users map[string]domain.ConnectedUser) *httptest.Server {
	t.Helper()
	title := "Walden"
	author := "Henry David Thoreau"

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("GET /document", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Document{
			Metadata: domain.Metadata{Title: &title, Author: &author},
			Elements: domain.Elements{
				domain.Text{Content: "I went to the woods"},
				domain.Text{Content: "because I wished to live deliberately"},
			},
		})
	})
	mux.HandleFunc("GET /positions", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.UsersResponse{Users: users})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunInfo(t *testing.T) {
	srv := testServer(t, nil)

	var out strings.Builder
	opts := &ClientOptions{Timeout: 5 * time.Second}
	require.NoError(t, runInfo(opts, srv.URL, &out))

	got := out.String()
	assert.Contains(t, got, "title:    Walden")
	assert.Contains(t, got, "author:   Henry David Thoreau")
	assert.Contains(t, got, "language: (unknown)")
	assert.Contains(t, got, "elements: 2")
}

func TestRunPeers(t *testing.T) {
	users := map[string]domain.ConnectedUser{
		"bob": {
			Name:     "bob",
			Color:    "#00ff00",
			Position: domain.Position{StartElement: 3, EndElement: 7},
		},
		"alice": {
			Name:     "alice",
			Color:    "#ff0000",
			Position: domain.Position{StartElement: 1, EndElement: 4},
		},
	}
	srv := testServer(t, users)

	var out strings.Builder
	opts := &ClientOptions{Timeout: 5 * time.Second}
	require.NoError(t, runPeers(opts, srv.URL, &out))

	got := out.String()
	aliceAt := strings.Index(got, "alice")
	bobAt := strings.Index(got, "bob")
	require.NotEqual(t, -1, aliceAt)
	require.NotEqual(t, -1, bobAt)
	assert.Less(t, aliceAt, bobAt)
	assert.Contains(t, got, "elements 3-7")
}

func TestRunPeersEmpty(t *testing.T) {
	srv := testServer(t, nil)

	var out strings.Builder
	opts := &ClientOptions{Timeout: 5 * time.Second}
	require.NoError(t, runPeers(opts, srv.URL, &out))
	assert.Equal(t, "no readers connected\n", out.String())
}
