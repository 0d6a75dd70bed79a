package shell

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables passed to the build and publish commands.
const (
	EnvRepository   = "PACFORGE_REPOSITORY"
	EnvArchitecture = "PACFORGE_ARCHITECTURE"
	EnvBase         = "PACFORGE_BASE"
	EnvVersion      = "PACFORGE_VERSION"
	EnvSource       = "PACFORGE_SOURCE"
	EnvSourceURL    = "PACFORGE_SOURCE_URL"
	EnvSourceBranch = "PACFORGE_SOURCE_BRANCH"
	EnvSourcePath   = "PACFORGE_SOURCE_PATH"
	EnvPackager     = "PACFORGE_PACKAGER"
	EnvBumpPkgrel   = "PACFORGE_BUMP_PKGREL"
	EnvRefresh      = "PACFORGE_REFRESH"
	EnvPatches      = "PACFORGE_PATCHES"
	EnvPackages     = "PACFORGE_PACKAGES"
)

// Toolchain builds and publishes packages by running configured commands.
// It implements both ports.Builder and ports.Publisher.
type Toolchain struct {
	executor ports.Executor
	build    []string
	publish  []string
}

// NewToolchain creates a toolchain running the given commands.
func NewToolchain(executor ports.Executor, build, publish []string) *Toolchain {
	return &Toolchain{executor: executor, build: build, publish: publish}
}

// Build runs the build command once per package, in order.
func (t *Toolchain) Build(
	ctx context.Context,
	repository domain.RepositoryID,
	packages []domain.Package,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	if len(t.build) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidConfig, "no build command configured")
	}

	result := domain.NewResult()
	for i := range packages {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "build interrupted")
		}

		pkg := &packages[i]
		if err := t.executor.Execute(ctx, t.build, buildEnv(repository, pkg, opts)); err != nil {
			result.AddFailed(pkg)
			continue
		}
		result.AddSuccess(pkg)
	}
	return result, nil
}

// Publish runs the publish command once for all packages. Without a publish
// command every package counts as published.
func (t *Toolchain) Publish(
	ctx context.Context,
	repository domain.RepositoryID,
	packages []domain.Package,
) (*domain.Result, error) {
	result := domain.NewResult()
	if len(packages) == 0 {
		return result, nil
	}

	env := repositoryEnv(repository)
	env = append(env, EnvPackages+"="+strings.Join(domain.Bases(packages), " "))

	var err error
	if len(t.publish) > 0 {
		err = t.executor.Execute(ctx, t.publish, env)
	}
	for i := range packages {
		if err != nil {
			result.AddFailed(&packages[i])
		} else {
			result.AddSuccess(&packages[i])
		}
	}
	return result, nil
}

func repositoryEnv(repository domain.RepositoryID) []string {
	return []string{
		EnvRepository + "=" + repository.Name,
		EnvArchitecture + "=" + repository.Architecture,
	}
}

func buildEnv(repository domain.RepositoryID, pkg *domain.Package, opts domain.UpdateOptions) []string {
	packager := opts.Packager
	if packager == "" {
		packager = pkg.Packager
	}

	patches := make([]string, 0, len(opts.Patches))
	for _, patch := range opts.Patches {
		patches = append(patches, patch.Key+"="+patch.Value)
	}

	return append(repositoryEnv(repository),
		EnvBase+"="+pkg.Base,
		EnvVersion+"="+pkg.Version,
		EnvSource+"="+pkg.Remote.Source,
		EnvSourceURL+"="+pkg.Remote.URL,
		EnvSourceBranch+"="+pkg.Remote.Branch,
		EnvSourcePath+"="+pkg.Remote.Path,
		EnvPackager+"="+packager,
		EnvBumpPkgrel+"="+strconv.FormatBool(opts.BumpPkgrel),
		EnvRefresh+"="+strconv.FormatBool(opts.Refresh),
		EnvPatches+"="+strings.Join(patches, "\n"),
	)
}
