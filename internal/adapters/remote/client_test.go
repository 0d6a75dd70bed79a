package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/adapters/remote"
	"go.trai.ch/pacforge/internal/core/domain"
)

var repo = domain.RepositoryID{Name: "core", Architecture: "x86_64"}

func TestClient_Submit(t *testing.T) {
	var (
		gotQuery map[string]string
		gotBody  map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, remote.ServiceAddPath, r.URL.Path)
		gotQuery = map[string]string{
			"architecture": r.URL.Query().Get("architecture"),
			"repository":   r.URL.Query().Get("repository"),
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"process_id": "42"})
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL+"/", nil)
	require.NoError(t, err)

	id, err := client.Submit(context.Background(), repo, []string{"a", "b"}, domain.UpdateOptions{
		BumpPkgrel: true,
		Patches:    []domain.Patch{{Key: "pkgrel", Value: "2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, map[string]string{"architecture": "x86_64", "repository": "core"}, gotQuery)
	assert.Equal(t, map[string]any{
		"packages":  []any{"a", "b"},
		"packager":  nil,
		"patches":   []any{map[string]any{"key": "pkgrel", "value": "2"}},
		"increment": true,
		"refresh":   false,
	}, gotBody)
}

func TestClient_SubmitPackager(t *testing.T) {
	var body remote.AddRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(remote.AddResponse{ProcessID: "1"})
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), repo, []string{"a"}, domain.UpdateOptions{Packager: "Me <me@example.com>"})
	require.NoError(t, err)
	require.NotNil(t, body.Packager)
	assert.Equal(t, "Me <me@example.com>", *body.Packager)
	assert.Equal(t, domain.UpdateOptions{Packager: "Me <me@example.com>", Patches: []domain.Patch{}}, body.Options())
}

func TestClient_SubmitErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(remote.ErrorResponse{Error: "busy"})
			},
		},
		{
			name: "missing process id",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]string{})
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client, err := remote.NewClient(server.URL, nil)
			require.NoError(t, err)

			_, err = client.Submit(context.Background(), repo, []string{"a"}, domain.UpdateOptions{})
			require.Error(t, err)
		})
	}
}

func TestClient_ProcessAlive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case remote.ServiceProcessPath + "running":
			_ = json.NewEncoder(w).Encode(remote.ProcessResponse{IsAlive: true})
		case remote.ServiceProcessPath + "finished":
			_ = json.NewEncoder(w).Encode(remote.ProcessResponse{IsAlive: false})
		case remote.ServiceProcessPath + "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL, nil)
	require.NoError(t, err)
	ctx := context.Background()

	alive, err := client.ProcessAlive(ctx, "running")
	require.NoError(t, err)
	assert.True(t, alive)

	alive, err = client.ProcessAlive(ctx, "finished")
	require.NoError(t, err)
	assert.False(t, alive)

	alive, err = client.ProcessAlive(ctx, "unknown")
	require.NoError(t, err, "404 means the process is gone")
	assert.False(t, alive)

	_, err = client.ProcessAlive(ctx, "broken")
	require.Error(t, err)
}

func TestNewClient_InvalidAddress(t *testing.T) {
	for _, address := range []string{"", "not a url", "w1:8080/path"} {
		_, err := remote.NewClient(address, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidWorker, address)
	}
}

func TestFactory_NewClient(t *testing.T) {
	factory := remote.NewFactory(nil)

	client, err := factory.NewClient(domain.NewWorker("http://w1:8080", ""))
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = factory.NewClient(domain.Worker{Address: "::", Identifier: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidWorker)
}
