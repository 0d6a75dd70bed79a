package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPartitionCount is returned when packages are partitioned into zero or fewer buckets.
	ErrInvalidPartitionCount = zerr.New("invalid partition count")

	// ErrDuplicatePackage is returned when the same package base appears twice in one graph.
	ErrDuplicatePackage = zerr.New("duplicate package base")

	// ErrSuccessAfterFailure is returned when a merge would record a failed package as successful.
	ErrSuccessAfterFailure = zerr.New("package recorded as successful after failure")

	// ErrExtensionLoad is returned when a trigger cannot be resolved or constructed.
	ErrExtensionLoad = zerr.New("failed to load extension")

	// ErrRemoteBuild is returned when a chunk could not be built on a remote worker.
	ErrRemoteBuild = zerr.New("remote build failed")

	// ErrProcessNotFound is returned when a remote process is unknown to the worker.
	ErrProcessNotFound = zerr.New("process not found")

	// ErrPackageNotFound is returned when a package base is not known to the repository.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrInvalidPackage is returned when a package definition has no base.
	ErrInvalidPackage = zerr.New("invalid package")

	// ErrPackagesFailed is returned when an update finished with failed packages.
	ErrPackagesFailed = zerr.New("some packages failed to update")

	// ErrNoWorkers is returned when a remote update is requested without workers.
	ErrNoWorkers = zerr.New("no workers available")

	// ErrInvalidWorker is returned when a worker has no address.
	ErrInvalidWorker = zerr.New("invalid worker")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration file cannot be parsed or validated.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
