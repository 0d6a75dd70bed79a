package domain

import (
	"slices"
)

// RemoteSource describes where the sources of a package base are fetched from.
type RemoteSource struct {
	// Source is the kind of remote, e.g. "aur", "local" or "repository".
	Source string `json:"source"`

	// URL is the location of the package sources.
	URL string `json:"url,omitempty"`

	// Branch is the branch to check out, if any.
	Branch string `json:"branch,omitempty"`

	// Path is the path to the PKGBUILD inside the sources.
	Path string `json:"path,omitempty"`
}

// PackageDescription holds the metadata of one binary package built from a base.
type PackageDescription struct {
	Description  string   `json:"description,omitempty"`
	Depends      []string `json:"depends,omitempty"`
	MakeDepends  []string `json:"make_depends,omitempty"`
	CheckDepends []string `json:"check_depends,omitempty"`
	OptDepends   []string `json:"opt_depends,omitempty"`
	Provides     []string `json:"provides,omitempty"`
}

// Package is a source package base together with the binary packages it yields.
type Package struct {
	// Base is the unique identifier of the package.
	Base string `json:"base"`

	// Version is the full version string, including epoch and pkgrel.
	Version string `json:"version"`

	// Packages maps binary package names to their descriptions.
	Packages map[string]PackageDescription `json:"packages"`

	// Remote describes the package sources.
	Remote RemoteSource `json:"remote"`

	// Packager is the last packager of the package, if known.
	Packager string `json:"packager,omitempty"`
}

// PackageNames returns the sorted set of names this package satisfies:
// the binary package names and everything they provide.
func (p *Package) PackageNames() []string {
	names := make(map[string]struct{}, len(p.Packages))
	for name, desc := range p.Packages {
		names[name] = struct{}{}
		for _, provided := range desc.Provides {
			names[stripVersion(provided)] = struct{}{}
		}
	}
	return sortedKeys(names)
}

// DependencyNames returns the sorted set of build-relevant dependency names
// (depends, makedepends and checkdepends) over all binary packages.
// Optional dependencies and names satisfied by the package itself are excluded.
func (p *Package) DependencyNames() []string {
	own := make(map[string]struct{})
	for _, name := range p.PackageNames() {
		own[name] = struct{}{}
	}

	deps := make(map[string]struct{})
	for _, desc := range p.Packages {
		for _, list := range [][]string{desc.Depends, desc.MakeDepends, desc.CheckDepends} {
			for _, dep := range list {
				name := stripVersion(dep)
				if _, ok := own[name]; ok {
					continue
				}
				deps[name] = struct{}{}
			}
		}
	}
	return sortedKeys(deps)
}

// stripVersion removes a version constraint such as ">=1.2" from a dependency.
func stripVersion(dep string) string {
	for i, r := range dep {
		if r == '<' || r == '>' || r == '=' {
			return dep[:i]
		}
	}
	return dep
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Bases returns the bases of the given packages in order.
func Bases(packages []Package) []string {
	bases := make([]string, 0, len(packages))
	for i := range packages {
		bases = append(bases, packages[i].Base)
	}
	return bases
}
