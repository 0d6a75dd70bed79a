package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/cmd/pacforge/commands"
	"go.trai.ch/pacforge/internal/app"
	"go.trai.ch/pacforge/internal/build"
	"go.trai.ch/pacforge/internal/core/domain"
)

type mockApp struct {
	configPath string
	jsonLogs   bool

	updateFunc       func(ctx context.Context, bases []string, opts app.UpdateOptions) (*domain.Result, error)
	serveFunc        func(ctx context.Context) error
	workersFunc      func(ctx context.Context, all bool) ([]domain.Worker, error)
	removeWorkerFunc func(ctx context.Context, identifier string) error
	addPackagesFunc  func(ctx context.Context, path string) ([]domain.Package, error)
	listPackagesFunc func(ctx context.Context) ([]domain.Package, error)
	eventsFunc       func(ctx context.Context, opts app.EventsOptions) ([]domain.Event, error)
}

func (m *mockApp) SetConfigPath(path string) { m.configPath = path }

func (m *mockApp) SetJSONLogs(enable bool) { m.jsonLogs = enable }

func (m *mockApp) Update(ctx context.Context, bases []string, opts app.UpdateOptions) (*domain.Result, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, bases, opts)
	}
	return domain.NewResult(), nil
}

func (m *mockApp) Serve(ctx context.Context) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx)
	}
	return nil
}

func (m *mockApp) Workers(ctx context.Context, all bool) ([]domain.Worker, error) {
	if m.workersFunc != nil {
		return m.workersFunc(ctx, all)
	}
	return nil, nil
}

func (m *mockApp) RemoveWorker(ctx context.Context, identifier string) error {
	if m.removeWorkerFunc != nil {
		return m.removeWorkerFunc(ctx, identifier)
	}
	return nil
}

func (m *mockApp) AddPackages(ctx context.Context, path string) ([]domain.Package, error) {
	if m.addPackagesFunc != nil {
		return m.addPackagesFunc(ctx, path)
	}
	return nil, nil
}

func (m *mockApp) ListPackages(ctx context.Context) ([]domain.Package, error) {
	if m.listPackagesFunc != nil {
		return m.listPackagesFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Events(ctx context.Context, opts app.EventsOptions) ([]domain.Event, error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx, opts)
	}
	return nil, nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "--config", "repo.yaml", "--json-logs", "package", "list")
	require.NoError(t, err)
	assert.Equal(t, "repo.yaml", mock.configPath)
	assert.True(t, mock.jsonLogs)
}

func TestCommands_Update(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.UpdateOptions
		var capturedBases []string

		mock := &mockApp{
			updateFunc: func(_ context.Context, bases []string, opts app.UpdateOptions) (*domain.Result, error) {
				capturedBases = bases
				capturedOpts = opts
				result := domain.NewResult()
				result.AddSuccess(&domain.Package{Base: "a", Version: "1.0-1"})
				return result, nil
			},
		}

		out, err := execute(t, mock, "update", "a", "b",
			"--packager", "Jane Doe <jane@example.com>",
			"--bump-pkgrel", "--refresh",
			"-w", "http://w1:8080", "--worker", "http://w2:8080",
			"--patch", "pkgver=1.2", "--patch", "url=https://example.com/?a=b",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, capturedBases)
		assert.Equal(t, app.UpdateOptions{
			UpdateOptions: domain.UpdateOptions{
				Packager:   "Jane Doe <jane@example.com>",
				BumpPkgrel: true,
				Refresh:    true,
				Patches: []domain.Patch{
					{Key: "pkgver", Value: "1.2"},
					{Key: "url", Value: "https://example.com/?a=b"},
				},
			},
			Workers: []string{"http://w1:8080", "http://w2:8080"},
		}, capturedOpts)
		assert.Contains(t, out, "a 1.0-1")
	})

	t.Run("reports failed packages", func(t *testing.T) {
		mock := &mockApp{
			updateFunc: func(context.Context, []string, app.UpdateOptions) (*domain.Result, error) {
				result := domain.NewResult()
				result.AddSuccess(&domain.Package{Base: "a", Version: "1-1"})
				result.AddFailed(&domain.Package{Base: "b", Version: "2-1"})
				return result, nil
			},
		}

		out, err := execute(t, mock, "update")
		require.NoError(t, err)
		assert.Contains(t, out, "a 1-1")
		assert.Contains(t, out, "b 2-1")
	})

	t.Run("fails when nothing was updated", func(t *testing.T) {
		mock := &mockApp{
			updateFunc: func(context.Context, []string, app.UpdateOptions) (*domain.Result, error) {
				result := domain.NewResult()
				result.AddFailed(&domain.Package{Base: "a", Version: "1-1"})
				result.AddFailed(&domain.Package{Base: "b", Version: "2-1"})
				return result, nil
			},
		}

		out, err := execute(t, mock, "update")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPackagesFailed)
		assert.Contains(t, out, "a 1-1")
		assert.Contains(t, out, "b 2-1")
	})

	t.Run("rejects malformed patches", func(t *testing.T) {
		mock := &mockApp{
			updateFunc: func(context.Context, []string, app.UpdateOptions) (*domain.Result, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "update", "--patch", "novalue")
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("returns error on update failure", func(t *testing.T) {
		mock := &mockApp{
			updateFunc: func(context.Context, []string, app.UpdateOptions) (*domain.Result, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "update", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Serve(t *testing.T) {
	called := false
	mock := &mockApp{
		serveFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "serve")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Workers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		var capturedAll bool
		mock := &mockApp{
			workersFunc: func(_ context.Context, all bool) ([]domain.Worker, error) {
				capturedAll = all
				return []domain.Worker{domain.NewWorker("http://w1:8080", "")}, nil
			},
		}

		out, err := execute(t, mock, "workers", "list", "--all")
		require.NoError(t, err)
		assert.True(t, capturedAll)
		assert.Contains(t, out, "w1:8080")
		assert.Contains(t, out, "http://w1:8080")
	})

	t.Run("remove", func(t *testing.T) {
		var removed string
		mock := &mockApp{
			removeWorkerFunc: func(_ context.Context, identifier string) error {
				removed = identifier
				return nil
			},
		}

		_, err := execute(t, mock, "workers", "remove", "w1:8080")
		require.NoError(t, err)
		assert.Equal(t, "w1:8080", removed)
	})

	t.Run("remove requires an identifier", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "workers", "remove")
		require.Error(t, err)
	})
}

func TestCommands_Package(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		var capturedPath string
		mock := &mockApp{
			addPackagesFunc: func(_ context.Context, path string) ([]domain.Package, error) {
				capturedPath = path
				return []domain.Package{{Base: "a", Version: "1-1"}}, nil
			},
		}

		out, err := execute(t, mock, "package", "add", "packages.json")
		require.NoError(t, err)
		assert.Equal(t, "packages.json", capturedPath)
		assert.Contains(t, out, "a 1-1")
	})

	t.Run("list", func(t *testing.T) {
		mock := &mockApp{
			listPackagesFunc: func(context.Context) ([]domain.Package, error) {
				return []domain.Package{
					{Base: "a", Version: "1-1", Packager: "Jane Doe <jane@example.com>"},
					{Base: "b", Version: "2-1"},
				}, nil
			},
		}

		out, err := execute(t, mock, "package", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "(Jane Doe <jane@example.com>)")
		assert.Contains(t, out, "2-1")
	})
}

func TestCommands_Events(t *testing.T) {
	var capturedOpts app.EventsOptions
	mock := &mockApp{
		eventsFunc: func(_ context.Context, opts app.EventsOptions) ([]domain.Event, error) {
			capturedOpts = opts
			return []domain.Event{{
				Event:     domain.EventPackageUpdateFailed,
				ObjectID:  "a",
				Message:   "package update failed",
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}}, nil
		},
	}

	out, err := execute(t, mock, "events", "-p", "a", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, app.EventsOptions{ObjectID: "a", Limit: 5}, capturedOpts)
	assert.Contains(t, out, "2026-01-02 03:04:05 a package-update-failed: package update failed")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
