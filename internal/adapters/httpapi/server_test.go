package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/adapters/httpapi"
	"go.trai.ch/pacforge/internal/adapters/remote"
	"go.trai.ch/pacforge/internal/adapters/sqlite"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.trai.ch/pacforge/internal/engine/distributed"
	"go.uber.org/mock/gomock"
)

var repo = domain.RepositoryID{Name: "core", Architecture: "x86_64"}

type fixture struct {
	server   *httpapi.Server
	http     *httptest.Server
	storage  *sqlite.Storage
	registry *distributed.Registry
	clock    *clockwork.FakeClock
	logger   *mocks.MockLogger
	metrics  *mocks.MockMetrics
}

func setup(t *testing.T, update httpapi.UpdateFunc) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	storage, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	f := &fixture{
		storage: storage,
		clock:   clockwork.NewFakeClock(),
		logger:  mocks.NewMockLogger(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
	}
	f.registry = distributed.NewRegistry(f.clock, time.Minute)

	ids := 0
	f.server = httpapi.NewServer(repo, storage, f.registry, f.logger, update,
		httpapi.WithMetrics(f.metrics, prometheus.NewRegistry()),
		httpapi.WithProcessIDs(func() string {
			ids++
			return "process-" + strconv.Itoa(ids)
		}),
	)
	f.http = httptest.NewServer(f.server.Handler())
	t.Cleanup(func() {
		f.http.Close()
		f.server.Close()
		_ = storage.Close()
	})
	return f
}

func TestServiceAdd_RunsUpdate(t *testing.T) {
	release := make(chan struct{})
	started := make(chan []string, 1)
	var gotOpts domain.UpdateOptions

	f := setup(t, func(_ context.Context, bases []string, opts domain.UpdateOptions) error {
		gotOpts = opts
		started <- bases
		<-release
		return nil
	})
	ctx := context.Background()
	require.NoError(t, f.storage.PackageUpdate(ctx, repo, &domain.Package{Base: "a", Version: "1.0-1"}))
	require.NoError(t, f.storage.PackageUpdate(ctx, repo, &domain.Package{Base: "b", Version: "2.0-1"}))

	client, err := remote.NewClient(f.http.URL, nil)
	require.NoError(t, err)

	id, err := client.Submit(ctx, repo, []string{"a", "b", "a"}, domain.UpdateOptions{Packager: "Me", Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, "process-1", id)
	assert.Equal(t, []string{"a", "b"}, <-started)

	queue, err := f.storage.BuildQueueGet(ctx, repo)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "1.0-1", queue[0].Version, "catalog entries are queued in full")

	alive, err := client.ProcessAlive(ctx, id)
	require.NoError(t, err)
	assert.True(t, alive)

	close(release)
	f.server.Wait()

	alive, err = client.ProcessAlive(ctx, id)
	require.NoError(t, err)
	assert.False(t, alive)
	assert.Equal(t, domain.UpdateOptions{Packager: "Me", Refresh: true, Patches: []domain.Patch{}}, gotOpts)

	queue, err = f.storage.BuildQueueGet(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, queue, "queue is cleared when the process ends")
}

func TestServiceAdd_UpdateErrorIsLogged(t *testing.T) {
	f := setup(t, func(context.Context, []string, domain.UpdateOptions) error {
		return errors.New("build failed")
	})
	f.logger.EXPECT().Error(gomock.Any())
	ctx := context.Background()
	require.NoError(t, f.storage.PackageUpdate(ctx, repo, &domain.Package{Base: "a", Version: "1.0-1"}))

	client, err := remote.NewClient(f.http.URL, nil)
	require.NoError(t, err)

	_, err = client.Submit(ctx, repo, []string{"a"}, domain.UpdateOptions{})
	require.NoError(t, err)
	f.server.Wait()
}

func TestServiceAdd_UnknownPackage(t *testing.T) {
	f := setup(t, func(context.Context, []string, domain.UpdateOptions) error {
		t.Error("update must not run")
		return nil
	})
	ctx := context.Background()
	require.NoError(t, f.storage.PackageUpdate(ctx, repo, &domain.Package{Base: "a", Version: "1.0-1"}))

	resp, err := http.Post(f.http.URL+remote.ServiceAddPath+"?architecture=x86_64&repository=core",
		"application/json", strings.NewReader(`{"packages":["a","ghost"]}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body remote.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Error, "ghost")

	queue, err := f.storage.BuildQueueGet(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, queue, "nothing is queued when a base is unknown")

	client, err := remote.NewClient(f.http.URL, nil)
	require.NoError(t, err)
	_, err = client.Submit(ctx, repo, []string{"ghost"}, domain.UpdateOptions{})
	require.Error(t, err, "submission of an unknown base fails")
}

func TestServiceAdd_BadRequests(t *testing.T) {
	f := setup(t, func(context.Context, []string, domain.UpdateOptions) error {
		t.Error("update must not run")
		return nil
	})

	tests := []struct {
		name  string
		query string
		body  string
	}{
		{name: "wrong repository", query: "?architecture=x86_64&repository=extra", body: `{"packages":["a"]}`},
		{name: "missing repository", query: "", body: `{"packages":["a"]}`},
		{name: "invalid body", query: "?architecture=x86_64&repository=core", body: `{`},
		{name: "no packages", query: "?architecture=x86_64&repository=core", body: `{"packages":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(f.http.URL+remote.ServiceAddPath+tt.query, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body remote.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestDistributed(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	coordinator, err := remote.NewCoordinator(f.http.URL, nil)
	require.NoError(t, err)

	w1 := domain.NewWorker("http://w1:8080", "")
	w2 := domain.NewWorker("http://w2:8080", "w2")

	gomock.InOrder(
		f.metrics.EXPECT().SetWorkers(1),
		f.metrics.EXPECT().SetWorkers(2),
		f.metrics.EXPECT().SetWorkers(1),
		f.metrics.EXPECT().SetWorkers(0),
	)

	require.NoError(t, coordinator.Register(ctx, w1))
	require.NoError(t, coordinator.Register(ctx, w2))

	workers, err := coordinator.Workers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Worker{w1, w2}, workers)

	persisted, err := f.storage.WorkersGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Worker{w1, w2}, persisted)

	require.NoError(t, coordinator.Unregister(ctx, w1))
	workers, err = coordinator.Workers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Worker{w2}, workers)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, f.http.URL+remote.DistributedPath, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	persisted, err = f.storage.WorkersGet(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestDistributed_Expiry(t *testing.T) {
	f := setup(t, nil)
	f.metrics.EXPECT().SetWorkers(1)
	ctx := context.Background()

	coordinator, err := remote.NewCoordinator(f.http.URL, nil)
	require.NoError(t, err)
	require.NoError(t, coordinator.Register(ctx, domain.NewWorker("http://w1:8080", "")))

	f.clock.Advance(time.Minute)

	workers, err := coordinator.Workers(ctx)
	require.NoError(t, err)
	assert.Empty(t, workers)
}

func TestDistributed_InvalidWorker(t *testing.T) {
	f := setup(t, nil)

	resp, err := http.Post(f.http.URL+remote.DistributedPath, "application/json", strings.NewReader(`{"identifier":"x"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	f := setup(t, nil)

	resp, err := http.Get(f.http.URL + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	storage, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = storage.Close() }()

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any())

	server := httpapi.NewServer(repo, storage, distributed.NewRegistry(nil, 0), logger, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
