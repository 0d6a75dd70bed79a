package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Result accumulates the outcome of a build and publish run.
type Result struct {
	success []Package
	failed  []Package
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{}
}

// AddSuccess records pkg as successfully updated.
func (r *Result) AddSuccess(pkg *Package) {
	if !containsBase(r.success, pkg.Base) {
		r.success = append(r.success, *pkg)
	}
}

// AddFailed records pkg as failed.
func (r *Result) AddFailed(pkg *Package) {
	if !containsBase(r.failed, pkg.Base) {
		r.failed = append(r.failed, *pkg)
	}
}

// Success returns the successfully updated packages minus any failed base.
func (r *Result) Success() []Package {
	out := make([]Package, 0, len(r.success))
	for i := range r.success {
		if !containsBase(r.failed, r.success[i].Base) {
			out = append(out, r.success[i])
		}
	}
	return out
}

// Failed returns the failed packages.
func (r *Result) Failed() []Package {
	return slices.Clone(r.failed)
}

// IsEmpty reports whether nothing was updated successfully.
func (r *Result) IsEmpty() bool {
	return len(r.Success()) == 0
}

// Merge combines r with other into a new Result.
//
// Failed packages are concatenated and removed from the success list.
// A package that other reports as successful while it is failed in r or in
// other itself is an error.
func (r *Result) Merge(other *Result) (*Result, error) {
	merged := &Result{
		failed: slices.Clone(r.failed),
	}
	for i := range other.failed {
		merged.AddFailed(&other.failed[i])
	}

	var conflicts []string
	for i := range other.success {
		if containsBase(merged.failed, other.success[i].Base) {
			conflicts = append(conflicts, other.success[i].Base)
		}
	}
	if len(conflicts) > 0 {
		err := zerr.Wrap(ErrSuccessAfterFailure, "failed to merge results")
		return nil, zerr.With(err, "bases", conflicts)
	}

	for _, list := range [][]Package{r.success, other.success} {
		for i := range list {
			if !containsBase(merged.failed, list[i].Base) {
				merged.AddSuccess(&list[i])
			}
		}
	}
	return merged, nil
}

func containsBase(packages []Package, base string) bool {
	return slices.ContainsFunc(packages, func(p Package) bool {
		return p.Base == base
	})
}
