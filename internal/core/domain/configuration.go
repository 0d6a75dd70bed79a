package domain

import "time"

// RepositoryID identifies a repository by name and architecture.
type RepositoryID struct {
	Name         string `json:"repository"`
	Architecture string `json:"architecture"`
}

// String returns the "name-architecture" form of the identifier.
func (id RepositoryID) String() string {
	return id.Name + "-" + id.Architecture
}

// Patch is a PKGBUILD variable override applied before building.
type Patch struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateOptions holds the per-run parameters of an update.
type UpdateOptions struct {
	// Packager overrides the packager of the built packages.
	Packager string

	// BumpPkgrel increments pkgrel when the version did not change.
	BumpPkgrel bool

	// Patches are applied to every package of the run.
	Patches []Patch

	// Refresh updates the package databases before building.
	Refresh bool
}

// BuildConfig configures how packages are built.
type BuildConfig struct {
	Command              []string
	PublishCommand       []string
	Workers              []string
	UseRegisteredWorkers bool
	Timeout              time.Duration
	PollInterval         time.Duration
	Triggers             []string
	TriggerOptions       map[string]map[string]string
}

// DistributedConfig configures the coordinator and worker roles.
type DistributedConfig struct {
	// Coordinator is the address of the coordinator this worker reports to.
	Coordinator string

	// Address is the address this worker is reachable at.
	Address string

	// Identifier overrides the worker identifier derived from Address.
	Identifier string

	// TimeToLive is the maximum heartbeat age before a worker is evicted.
	TimeToLive time.Duration

	// Listen is the address the HTTP service binds to.
	Listen string
}

// NotifyConfig configures the NATS notification trigger.
type NotifyConfig struct {
	URL     string
	Subject string
}

// Configuration is the full runtime configuration.
type Configuration struct {
	Repository  RepositoryID
	StoragePath string
	Build       BuildConfig
	Distributed DistributedConfig
	Notify      NotifyConfig
}

// Worker returns the worker identity of this instance.
func (c *Configuration) Worker() Worker {
	return NewWorker(c.Distributed.Address, c.Distributed.Identifier)
}

// Event is a record of something that happened to a package.
type Event struct {
	Event     string            `json:"event"`
	ObjectID  string            `json:"object_id"`
	Message   string            `json:"message,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Data      map[string]string `json:"data,omitempty"`
}

const (
	// EventPackageUpdated is recorded when a package was built and published.
	EventPackageUpdated = "package-updated"

	// EventPackageUpdateFailed is recorded when a package failed to build.
	EventPackageUpdateFailed = "package-update-failed"
)
