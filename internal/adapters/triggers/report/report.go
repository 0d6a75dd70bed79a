// Package report provides a trigger that logs a summary of every update run.
package report

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.trai.ch/zerr"
)

// Identifier is the name the trigger is registered under.
const Identifier = "pacforge.triggers.report.ReportTrigger"

func init() {
	triggers.Register(Identifier, func(env triggers.Environment) (any, error) {
		return New(env)
	})
}

// ReportTrigger logs which packages were updated and which failed.
type ReportTrigger struct {
	triggers.Base
	repository domain.RepositoryID
	logger     ports.Logger
	verbose    bool
}

// New creates a report trigger. The "verbose" option also lists the
// requested packages when a run starts processing results.
func New(env triggers.Environment) (*ReportTrigger, error) {
	if env.Logger == nil {
		return nil, zerr.New("report trigger requires a logger")
	}
	verbose := false
	if value, ok := env.Options["verbose"]; ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid verbose option"), "value", value)
		}
		verbose = parsed
	}
	return &ReportTrigger{repository: env.Repository, logger: env.Logger, verbose: verbose}, nil
}

// OnResult logs the summary.
func (t *ReportTrigger) OnResult(_ context.Context, result *domain.Result, packages []domain.Package) error {
	if t.verbose {
		t.logger.Info("requested packages for " + t.repository.String() + ": " + list(domain.Bases(packages)))
	}

	success := domain.Bases(result.Success())
	failed := domain.Bases(result.Failed())
	if len(success) > 0 {
		t.logger.Info("updated " + strconv.Itoa(len(success)) + " package(s) in " + t.repository.String() + ": " + list(success))
	}
	if len(failed) > 0 {
		t.logger.Warn("failed " + strconv.Itoa(len(failed)) + " package(s) in " + t.repository.String() + ": " + list(failed))
	}
	if len(success) == 0 && len(failed) == 0 {
		t.logger.Info("nothing to update in " + t.repository.String())
	}
	return nil
}

func list(bases []string) string {
	if len(bases) == 0 {
		return "none"
	}
	return strings.Join(bases, ", ")
}
