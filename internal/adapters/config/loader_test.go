package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/adapters/config"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, config.DefaultFilename, `
repository:
  name: core
  architecture: aarch64
storage:
  path: /var/lib/pacforge/core.db
build:
  command: ["makepkg", "-s"]
  publish_command: ["repo-add", "core.db.tar.gz"]
  workers: ["http://w1:8080", "http://w2:8080"]
  timeout: 2h
  poll_interval: 10s
  triggers: ["pacforge.triggers.report.ReportTrigger"]
  trigger_options:
    pacforge.triggers.report.ReportTrigger:
      verbose: "true"
distributed:
  coordinator: http://coordinator:8080
  address: http://w1:8080
  time_to_live: 30s
  listen: ":9090"
notify:
  nats_url: nats://localhost:4222
`)

	cfg, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.RepositoryID{Name: "core", Architecture: "aarch64"}, cfg.Repository)
	assert.Equal(t, "/var/lib/pacforge/core.db", cfg.StoragePath)
	assert.Equal(t, []string{"makepkg", "-s"}, cfg.Build.Command)
	assert.Equal(t, []string{"repo-add", "core.db.tar.gz"}, cfg.Build.PublishCommand)
	assert.Equal(t, []string{"http://w1:8080", "http://w2:8080"}, cfg.Build.Workers)
	assert.Equal(t, 2*time.Hour, cfg.Build.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Build.PollInterval)
	assert.Equal(t, map[string]string{"verbose": "true"},
		cfg.Build.TriggerOptions["pacforge.triggers.report.ReportTrigger"])
	assert.Equal(t, "http://coordinator:8080", cfg.Distributed.Coordinator)
	assert.Equal(t, 30*time.Second, cfg.Distributed.TimeToLive)
	assert.Equal(t, ":9090", cfg.Distributed.Listen)
	assert.Equal(t, "nats://localhost:4222", cfg.Notify.URL)
	assert.Equal(t, config.DefaultSubject, cfg.Notify.Subject)
}

func TestLoader_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), config.DefaultFilename, "repository:\n  name: extra\n")

	cfg, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultArchitecture, cfg.Repository.Architecture)
	assert.Equal(t, config.DefaultStoragePath, cfg.StoragePath)
	assert.Equal(t, config.DefaultPollInterval, cfg.Build.PollInterval)
	assert.Zero(t, cfg.Build.Timeout)
	assert.Equal(t, config.DefaultTimeToLive, cfg.Distributed.TimeToLive)
	assert.Equal(t, config.DefaultListen, cfg.Distributed.Listen)
}

func TestLoader_ExpandsDotenv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.EnvFilename, "PACFORGE_TEST_REPO=community\nPACFORGE_TEST_NATS=nats://from-dotenv\n")
	path := writeFile(t, dir, config.DefaultFilename, `
repository:
  name: ${PACFORGE_TEST_REPO}
notify:
  nats_url: ${PACFORGE_TEST_NATS}
`)
	t.Setenv("PACFORGE_TEST_NATS", "nats://from-env")

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any())

	cfg, err := config.NewLoader(logger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "community", cfg.Repository.Name)
	assert.Equal(t, "nats://from-env", cfg.Notify.URL, "process environment wins over .env")
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "invalid yaml", content: "repository: [", want: domain.ErrInvalidConfig},
		{name: "missing name", content: "repository:\n  architecture: x86_64\n", want: domain.ErrInvalidConfig},
		{
			name:    "bad duration",
			content: "repository:\n  name: core\nbuild:\n  poll_interval: soon\n",
			want:    domain.ErrInvalidConfig,
		},
		{
			name:    "negative ttl",
			content: "repository:\n  name: core\ndistributed:\n  time_to_live: -1s\n",
			want:    domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), config.DefaultFilename, tt.content)
			_, err := config.NewLoader(nil).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_NotFound(t *testing.T) {
	_, err := config.NewLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}
