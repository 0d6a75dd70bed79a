package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/adapters/triggers/notify"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/engine/triggers"
)

var repo = domain.RepositoryID{Name: "core", Architecture: "x86_64"}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     triggers.Environment
		wantErr bool
	}{
		{
			name: "from configuration",
			env: triggers.Environment{
				Repository:    repo,
				Configuration: &domain.Configuration{Notify: domain.NotifyConfig{URL: "nats://localhost:4222", Subject: "builds"}},
			},
		},
		{
			name: "from options",
			env: triggers.Environment{
				Repository: repo,
				Options:    map[string]string{"url": "nats://localhost:4222", "subject": "builds", "jetstream": "true"},
			},
		},
		{
			name:    "missing url",
			env:     triggers.Environment{Repository: repo, Options: map[string]string{"subject": "builds"}},
			wantErr: true,
		},
		{
			name:    "missing subject",
			env:     triggers.Environment{Repository: repo, Options: map[string]string{"url": "nats://localhost:4222"}},
			wantErr: true,
		},
		{
			name: "invalid jetstream option",
			env: triggers.Environment{
				Repository: repo,
				Options:    map[string]string{"url": "nats://localhost:4222", "subject": "builds", "jetstream": "maybe"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := notify.New(tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotifyTrigger_Unreachable(t *testing.T) {
	trigger, err := notify.New(triggers.Environment{
		Repository: repo,
		Options:    map[string]string{"url": "nats://127.0.0.1:1", "subject": "builds"},
	})
	require.NoError(t, err)

	ctx := context.Background()
	assert.Error(t, trigger.OnStart(ctx))
	assert.Error(t, trigger.OnResult(ctx, domain.NewResult(), nil), "publishing requires a connection")
	assert.NoError(t, trigger.OnStop(ctx))
}

func TestNewMessage(t *testing.T) {
	a := domain.Package{Base: "a"}
	b := domain.Package{Base: "b"}
	result := domain.NewResult()
	result.AddSuccess(&a)
	result.AddFailed(&b)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, notify.Message{
		Repository:   "core",
		Architecture: "x86_64",
		Updated:      []string{"a"},
		Failed:       []string{"b"},
		Timestamp:    now,
	}, notify.NewMessage(repo, result, now))
}

func TestNotifyTrigger_Registered(t *testing.T) {
	_, ok := triggers.DefaultRegistry().Lookup(notify.Identifier)
	assert.True(t, ok)
}
