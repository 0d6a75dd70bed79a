package triggers_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.uber.org/mock/gomock"
)

var repo = domain.RepositoryID{Name: "core", Architecture: "x86_64"}

// recorder appends its name to a shared log on every hook.
type recorder struct {
	triggers.Base
	name string
	log  *[]string
	fail bool
}

func (r *recorder) OnStart(context.Context) error {
	*r.log = append(*r.log, r.name+":start")
	return nil
}

func (r *recorder) OnResult(context.Context, *domain.Result, []domain.Package) error {
	*r.log = append(*r.log, r.name+":result")
	if r.fail {
		return errors.New("boom")
	}
	return nil
}

type panicker struct {
	triggers.Base
}

func (panicker) OnResult(context.Context, *domain.Result, []domain.Package) error {
	panic("trigger exploded")
}

type notATrigger struct{}

func newEnv(t *testing.T) (triggers.Environment, *mocks.MockLogger) {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	return triggers.Environment{
		Repository:    repo,
		Configuration: &domain.Configuration{Repository: repo},
		Logger:        logger,
	}, logger
}

func TestRegistry_Register(t *testing.T) {
	r := triggers.NewRegistry()
	factory := func(triggers.Environment) (any, error) { return &recorder{}, nil }

	require.NoError(t, r.Register("test.Recorder", factory))
	assert.ErrorIs(t, r.Register("test.Recorder", factory), domain.ErrExtensionLoad)
	assert.ErrorIs(t, r.Register("", factory), domain.ErrExtensionLoad)
	assert.ErrorIs(t, r.Register("test.Nil", nil), domain.ErrExtensionLoad)
	assert.Panics(t, func() { r.MustRegister("test.Recorder", factory) })
	assert.Equal(t, []string{"test.Recorder"}, r.Identifiers())
}

func TestLoader_LoadErrors(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		factory    triggers.Factory
	}{
		{name: "unknown identifier", identifier: "test.Missing"},
		{name: "malformed identifier", identifier: "NoDot"},
		{
			name:       "not a trigger",
			identifier: "test.NotATrigger",
			factory:    func(triggers.Environment) (any, error) { return &notATrigger{}, nil },
		},
		{
			name:       "bare base",
			identifier: "test.Base",
			factory:    func(triggers.Environment) (any, error) { return &triggers.Base{}, nil },
		},
		{
			name:       "nil value",
			identifier: "test.Nil",
			factory:    func(triggers.Environment) (any, error) { return nil, nil },
		},
		{
			name:       "constructor error",
			identifier: "test.Failing",
			factory:    func(triggers.Environment) (any, error) { return nil, errors.New("no token") },
		},
		{
			name:       "constructor panic",
			identifier: "test.Panicking",
			factory:    func(triggers.Environment) (any, error) { panic("bad config") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := triggers.NewRegistry()
			var log []string
			registry.MustRegister("test.Recorder", func(triggers.Environment) (any, error) {
				return &recorder{name: "first", log: &log}, nil
			})
			if tt.factory != nil {
				registry.MustRegister(tt.identifier, tt.factory)
			}

			env, _ := newEnv(t)
			pipeline, err := triggers.NewLoader(registry).Load([]string{"test.Recorder", tt.identifier}, env)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrExtensionLoad)
			assert.Nil(t, pipeline)
			assert.Empty(t, log, "no trigger may run when loading fails")
		})
	}
}

func TestLoader_PassesOptions(t *testing.T) {
	registry := triggers.NewRegistry()
	var got triggers.Environment
	registry.MustRegister("test.Recorder", func(env triggers.Environment) (any, error) {
		got = env
		return &recorder{log: new([]string)}, nil
	})

	env, _ := newEnv(t)
	env.Configuration.Build.TriggerOptions = map[string]map[string]string{
		"test.Recorder": {"channel": "builds"},
	}

	pipeline, err := triggers.NewLoader(registry).Load([]string{"test.Recorder"}, env)
	require.NoError(t, err)
	assert.Equal(t, 1, pipeline.Len())
	assert.Equal(t, repo, got.Repository)
	assert.Equal(t, map[string]string{"channel": "builds"}, got.Options)
}

func TestPipeline_Dispatch(t *testing.T) {
	env, logger := newEnv(t)
	var log []string

	registry := triggers.NewRegistry()
	registry.MustRegister("test.First", func(triggers.Environment) (any, error) {
		return &recorder{name: "first", log: &log, fail: true}, nil
	})
	registry.MustRegister("test.Panicker", func(triggers.Environment) (any, error) {
		return panicker{}, nil
	})
	registry.MustRegister("test.Second", func(triggers.Environment) (any, error) {
		return &recorder{name: "second", log: &log}, nil
	})

	pipeline, err := triggers.NewLoader(registry).Load([]string{"test.First", "test.Panicker", "test.Second"}, env)
	require.NoError(t, err)

	logger.EXPECT().Error(gomock.Any()).Times(2)

	ctx := context.Background()
	pipeline.OnStart(ctx)
	pipeline.Process(ctx, domain.NewResult(), nil)
	pipeline.OnStop(ctx)

	assert.Equal(t, []string{"first:start", "second:start", "first:result", "second:result"}, log)
}

const scriptSource = `package main

import (
	"errors"
	"strings"
)

var Calls []string

func New(repository string, options map[string]string) (func(event string, success, failed []string) error, error) {
	if repository == "" {
		return nil, errors.New("repository is required")
	}
	prefix := options["prefix"]
	return func(event string, success, failed []string) error {
		Calls = append(Calls, prefix+event+":"+strings.Join(success, ","))
		if len(failed) > 0 {
			return errors.New("failed packages: " + strings.Join(failed, ","))
		}
		return nil
	}, nil
}

func Wrong(repository string) error {
	return nil
}
`

func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.go")
	require.NoError(t, os.WriteFile(path, []byte(scriptSource), 0o644))
	return path
}

func TestLoader_Script(t *testing.T) {
	path := writeScript(t)
	env, logger := newEnv(t)

	pipeline, err := triggers.NewLoader(triggers.NewRegistry()).Load([]string{path + ".New"}, env)
	require.NoError(t, err)
	require.Equal(t, 1, pipeline.Len())

	a := domain.Package{Base: "a"}
	b := domain.Package{Base: "b"}

	ctx := context.Background()
	pipeline.OnStart(ctx)

	ok := domain.NewResult()
	ok.AddSuccess(&a)
	pipeline.Process(ctx, ok, []domain.Package{a})

	failed := domain.NewResult()
	failed.AddFailed(&b)
	logger.EXPECT().Error(gomock.Any())
	pipeline.Process(ctx, failed, []domain.Package{b})
}

func TestLoader_ScriptErrors(t *testing.T) {
	path := writeScript(t)
	empty := filepath.Join(t.TempDir(), "empty.go")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))

	tests := []struct {
		name       string
		identifier string
	}{
		{name: "missing file", identifier: filepath.Join(t.TempDir(), "missing.go") + ".New"},
		{name: "empty file", identifier: empty + ".New"},
		{name: "missing symbol", identifier: path + ".Missing"},
		{name: "wrong signature", identifier: path + ".Wrong"},
		{name: "not a function", identifier: path + ".Calls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newEnv(t)
			_, err := triggers.NewLoader(triggers.NewRegistry()).Load([]string{tt.identifier}, env)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrExtensionLoad)
		})
	}
}
