// Package domain contains the core domain models and the package dependency graph.
package domain

import (
	"cmp"
	"slices"

	"go.trai.ch/zerr"
)

// Leaf is a package annotated with the bases it depends on inside the working set.
type Leaf struct {
	Package      Package
	Dependencies map[string]struct{}
}

// NewLeaf creates a leaf for pkg. Only dependencies satisfied by a package
// in the working set are kept; the working set maps every satisfied name
// (base, binary package or provided name) to its base.
func NewLeaf(pkg *Package, workingSet map[string]string) *Leaf {
	deps := make(map[string]struct{})
	for _, name := range pkg.DependencyNames() {
		base, ok := workingSet[name]
		if !ok || base == pkg.Base {
			continue
		}
		deps[base] = struct{}{}
	}
	return &Leaf{Package: *pkg, Dependencies: deps}
}

// IsRoot reports whether none of the leaf dependencies are left in remaining.
func (l *Leaf) IsRoot(remaining map[string]*Leaf) bool {
	for dep := range l.Dependencies {
		if _, ok := remaining[dep]; ok {
			return false
		}
	}
	return true
}

// Tree holds the leaves built for a single resolution call.
type Tree struct {
	leaves map[string]*Leaf
}

// NewTree builds a tree from the given packages.
// It returns an error if the same base is given twice.
func NewTree(packages []Package) (*Tree, error) {
	workingSet := make(map[string]string, len(packages))
	for i := range packages {
		pkg := &packages[i]
		if _, exists := workingSet[pkg.Base]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicatePackage, "failed to build package tree"), "base", pkg.Base)
		}
		workingSet[pkg.Base] = pkg.Base
	}
	for i := range packages {
		pkg := &packages[i]
		for _, name := range pkg.PackageNames() {
			if _, exists := workingSet[name]; !exists {
				workingSet[name] = pkg.Base
			}
		}
	}

	leaves := make(map[string]*Leaf, len(packages))
	for i := range packages {
		leaves[packages[i].Base] = NewLeaf(&packages[i], workingSet)
	}
	return &Tree{leaves: leaves}, nil
}

// Levels orders the tree into dependency levels. Packages of a level only
// depend on packages of earlier levels. If the remaining packages form a
// cycle, they are all emitted as the final level.
func (t *Tree) Levels() [][]Package {
	remaining := make(map[string]*Leaf, len(t.leaves))
	for base, leaf := range t.leaves {
		remaining[base] = leaf
	}

	var levels [][]Package
	for len(remaining) > 0 {
		var roots []*Leaf
		for _, leaf := range remaining {
			if leaf.IsRoot(remaining) {
				roots = append(roots, leaf)
			}
		}

		if len(roots) == 0 {
			// cycle
			levels = append(levels, sortedPackages(remaining))
			break
		}

		level := make(map[string]*Leaf, len(roots))
		for _, leaf := range roots {
			level[leaf.Package.Base] = leaf
		}
		for base := range level {
			delete(remaining, base)
		}
		levels = append(levels, sortedPackages(level))
	}
	return levels
}

// Partition splits the tree into count buckets so that packages connected
// by a dependency always end up in the same bucket. Whole components are
// assigned, largest first, to the least loaded bucket.
func (t *Tree) Partition(count int) ([][]Package, error) {
	if count <= 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidPartitionCount, "failed to partition packages"), "count", count)
	}

	components := t.components()
	slices.SortStableFunc(components, func(a, b []string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})

	buckets := make([]map[string]*Leaf, count)
	for i := range buckets {
		buckets[i] = make(map[string]*Leaf)
	}
	for _, component := range components {
		target := 0
		for i := 1; i < count; i++ {
			if len(buckets[i]) < len(buckets[target]) {
				target = i
			}
		}
		for _, base := range component {
			buckets[target][base] = t.leaves[base]
		}
	}

	result := make([][]Package, count)
	for i, bucket := range buckets {
		result[i] = sortedPackages(bucket)
	}
	return result, nil
}

// components returns the connected components of the undirected dependency
// graph. Bases inside a component are sorted.
func (t *Tree) components() [][]string {
	adjacency := make(map[string][]string, len(t.leaves))
	for base, leaf := range t.leaves {
		for dep := range leaf.Dependencies {
			adjacency[base] = append(adjacency[base], dep)
			adjacency[dep] = append(adjacency[dep], base)
		}
	}

	bases := make([]string, 0, len(t.leaves))
	for base := range t.leaves {
		bases = append(bases, base)
	}
	slices.Sort(bases)

	visited := make(map[string]bool, len(t.leaves))
	var components [][]string
	for _, start := range bases {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []string{start}
		var component []string
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)
			for _, next := range adjacency[current] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}

func sortedPackages(leaves map[string]*Leaf) []Package {
	packages := make([]Package, 0, len(leaves))
	for _, leaf := range leaves {
		packages = append(packages, leaf.Package)
	}
	slices.SortFunc(packages, func(a, b Package) int {
		return cmp.Compare(a.Base, b.Base)
	})
	return packages
}

// Resolve orders packages into dependency levels.
func Resolve(packages []Package) ([][]Package, error) {
	tree, err := NewTree(packages)
	if err != nil {
		return nil, err
	}
	return tree.Levels(), nil
}

// Partition splits packages into count dependency-closed buckets.
func Partition(packages []Package, count int) ([][]Package, error) {
	if count <= 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidPartitionCount, "failed to partition packages"), "count", count)
	}
	tree, err := NewTree(packages)
	if err != nil {
		return nil, err
	}
	return tree.Partition(count)
}
