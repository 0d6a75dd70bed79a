package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/adapters/triggers/report"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.uber.org/mock/gomock"
)

var repo = domain.RepositoryID{Name: "core", Architecture: "x86_64"}

func TestReportTrigger_OnResult(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	trigger, err := report.New(triggers.Environment{Repository: repo, Logger: logger})
	require.NoError(t, err)

	a := domain.Package{Base: "a"}
	b := domain.Package{Base: "b"}
	c := domain.Package{Base: "c"}
	result := domain.NewResult()
	result.AddSuccess(&a)
	result.AddSuccess(&b)
	result.AddFailed(&c)

	gomock.InOrder(
		logger.EXPECT().Info("updated 2 package(s) in core-x86_64: a, b"),
		logger.EXPECT().Warn("failed 1 package(s) in core-x86_64: c"),
	)
	require.NoError(t, trigger.OnResult(context.Background(), result, []domain.Package{a, b, c}))
}

func TestReportTrigger_Verbose(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	trigger, err := report.New(triggers.Environment{
		Repository: repo,
		Logger:     logger,
		Options:    map[string]string{"verbose": "true"},
	})
	require.NoError(t, err)

	gomock.InOrder(
		logger.EXPECT().Info("requested packages for core-x86_64: none"),
		logger.EXPECT().Info("nothing to update in core-x86_64"),
	)
	require.NoError(t, trigger.OnResult(context.Background(), domain.NewResult(), nil))
}

func TestReportTrigger_Registered(t *testing.T) {
	_, ok := triggers.DefaultRegistry().Lookup(report.Identifier)
	assert.True(t, ok)
}

func TestReportTrigger_InvalidOption(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	_, err := report.New(triggers.Environment{Logger: logger, Options: map[string]string{"verbose": "sometimes"}})
	assert.Error(t, err)
}
