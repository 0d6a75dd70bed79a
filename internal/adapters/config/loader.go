// Package config provides the configuration loader for pacforge.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up when no path is given.
	DefaultFilename = "pacforge.yaml"

	// EnvFilename is the dotenv file read next to the configuration file.
	EnvFilename = ".env"
)

// Defaults applied to missing values.
const (
	DefaultArchitecture = "x86_64"
	DefaultStoragePath  = "pacforge.db"
	DefaultTimeToLive   = 60 * time.Second
	DefaultPollInterval = 5 * time.Second
	DefaultListen       = ":8080"
	DefaultSubject      = "pacforge.updates"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. Variables such as ${TOKEN} are
// expanded from the environment, falling back to a .env file next to the
// configuration.
func (l *Loader) Load(path string) (*domain.Configuration, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	dotenv, err := l.readDotenv(filepath.Join(filepath.Dir(path), EnvFilename))
	if err != nil {
		return nil, err
	}

	expanded := os.Expand(string(data), func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return dotenv[key]
	})

	var file File
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}

	cfg, err := toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}
	if l.logger != nil {
		l.logger.Info("loaded environment from " + path)
	}
	return values, nil
}

func toDomain(file *File) (*domain.Configuration, error) {
	if file.Repository.Name == "" {
		return nil, zerr.Wrap(domain.ErrInvalidConfig, "repository.name is required")
	}

	timeout, err := parseDuration("build.timeout", file.Build.Timeout, 0)
	if err != nil {
		return nil, err
	}
	pollInterval, err := parseDuration("build.poll_interval", file.Build.PollInterval, DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	ttl, err := parseDuration("distributed.time_to_live", file.Distributed.TimeToLive, DefaultTimeToLive)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Configuration{
		Repository: domain.RepositoryID{
			Name:         file.Repository.Name,
			Architecture: withDefault(file.Repository.Architecture, DefaultArchitecture),
		},
		StoragePath: withDefault(file.Storage.Path, DefaultStoragePath),
		Build: domain.BuildConfig{
			Command:              file.Build.Command,
			PublishCommand:       file.Build.PublishCommand,
			Workers:              file.Build.Workers,
			UseRegisteredWorkers: file.Build.UseRegisteredWorkers,
			Timeout:              timeout,
			PollInterval:         pollInterval,
			Triggers:             file.Build.Triggers,
			TriggerOptions:       file.Build.TriggerOptions,
		},
		Distributed: domain.DistributedConfig{
			Coordinator: file.Distributed.Coordinator,
			Address:     file.Distributed.Address,
			Identifier:  file.Distributed.Identifier,
			TimeToLive:  ttl,
			Listen:      withDefault(file.Distributed.Listen, DefaultListen),
		},
		Notify: domain.NotifyConfig{
			URL:     file.Notify.URL,
			Subject: withDefault(file.Notify.Subject, DefaultSubject),
		},
	}
	return cfg, nil
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid duration"), "field", field)
	}
	return d, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
