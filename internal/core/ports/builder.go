package ports

import (
	"context"

	"go.trai.ch/pacforge/internal/core/domain"
)

// Builder builds packages on the local machine.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build builds packages in the given order. Packages that fail to build
	// are reported in the returned result, not as an error.
	Build(ctx context.Context, repository domain.RepositoryID, packages []domain.Package, opts domain.UpdateOptions) (*domain.Result, error)
}

// Publisher signs and publishes built packages to the repository.
type Publisher interface {
	// Publish adds the packages to the repository database.
	Publish(ctx context.Context, repository domain.RepositoryID, packages []domain.Package) (*domain.Result, error)
}

// Toolchain both builds and publishes packages.
type Toolchain interface {
	Builder
	Publisher
}

// ToolchainFactory creates toolchains for a build configuration.
type ToolchainFactory interface {
	NewToolchain(config domain.BuildConfig) Toolchain
}
