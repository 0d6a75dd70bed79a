package updater_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.trai.ch/pacforge/internal/engine/updater"
	"go.uber.org/mock/gomock"
)

func TestRunner_Local(t *testing.T) {
	deps := setup(t)
	a, b, c := pkg("a", "b"), pkg("b"), pkg("c")

	var order [][]string
	deps.builder.EXPECT().Build(gomock.Any(), repo, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RepositoryID, packages []domain.Package, _ domain.UpdateOptions) (*domain.Result, error) {
			order = append(order, domain.Bases(packages))
			if packages[0].Base == "b" {
				return resultOf([]domain.Package{b}, []domain.Package{c}), nil
			}
			return resultOf(packages, nil), nil
		}).Times(2)
	deps.publisher.EXPECT().Publish(gomock.Any(), repo, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RepositoryID, packages []domain.Package) (*domain.Result, error) {
			return resultOf(packages, nil), nil
		}).Times(2)

	u := updater.NewLocal(repo, deps.builder, deps.publisher, deps.logger)
	runner := updater.NewRunner(deps.logger, deps.metrics, nil)

	result, err := runner.Run(context.Background(), u, []domain.Package{a, b, c}, domain.UpdateOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"b", "c"}, {"a"}}, order)
	assert.Equal(t, []string{"b", "a"}, domain.Bases(result.Success()))
	assert.Equal(t, []string{"c"}, domain.Bases(result.Failed()))
}

func TestRunner_Remote(t *testing.T) {
	deps := setup(t)
	ctrl := gomock.NewController(t)
	workers := []domain.Worker{domain.NewWorker("http://w1", ""), domain.NewWorker("http://w2", "")}

	var mu sync.Mutex
	submitted := make(map[string][]string)
	deps.factory.EXPECT().NewClient(gomock.Any()).DoAndReturn(func(w domain.Worker) (ports.ServiceClient, error) {
		client := mocks.NewMockServiceClient(ctrl)
		client.EXPECT().Submit(gomock.Any(), repo, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.RepositoryID, bases []string, _ domain.UpdateOptions) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				submitted[w.Identifier] = bases
				return "proc-" + w.Identifier, nil
			}).AnyTimes()
		client.EXPECT().ProcessAlive(gomock.Any(), "proc-"+w.Identifier).Return(false, nil).AnyTimes()
		return client, nil
	}).Times(2)

	u := updater.NewRemote(repo, workers, deps.factory, deps.logger)
	runner := updater.NewRunner(deps.logger, deps.metrics, nil)

	packages := []domain.Package{pkg("a", "b"), pkg("b"), pkg("c")}
	result, err := runner.Run(context.Background(), u, packages, domain.UpdateOptions{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, domain.Bases(result.Success()))
	assert.Empty(t, result.Failed())

	assert.Len(t, submitted, 2)
	var all []string
	for _, bases := range submitted {
		all = append(all, bases...)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, all)
}

func TestRunner_RemoteSubmitFailureKeepsSiblings(t *testing.T) {
	deps := setup(t)
	ctrl := gomock.NewController(t)
	workers := []domain.Worker{domain.NewWorker("http://w1", ""), domain.NewWorker("http://w2", "")}

	var mu sync.Mutex
	var built, rejected []string
	deps.factory.EXPECT().NewClient(gomock.Any()).DoAndReturn(func(w domain.Worker) (ports.ServiceClient, error) {
		client := mocks.NewMockServiceClient(ctrl)
		client.EXPECT().Submit(gomock.Any(), repo, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.RepositoryID, bases []string, _ domain.UpdateOptions) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				if w.Address == "http://w2" {
					rejected = append(rejected, bases...)
					return "", errors.New("connection refused")
				}
				built = append(built, bases...)
				return "proc-1", nil
			}).AnyTimes()
		client.EXPECT().ProcessAlive(gomock.Any(), "proc-1").Return(false, nil).AnyTimes()
		return client, nil
	}).Times(2)
	deps.logger.EXPECT().Error(gomock.Any()).Times(1)

	u := updater.NewRemote(repo, workers, deps.factory, deps.logger)
	runner := updater.NewRunner(deps.logger, deps.metrics, nil)

	packages := []domain.Package{pkg("a", "b"), pkg("b"), pkg("c")}
	result, err := runner.Run(context.Background(), u, packages, domain.UpdateOptions{})
	require.NoError(t, err)

	require.NotEmpty(t, built)
	require.NotEmpty(t, rejected)
	assert.ElementsMatch(t, built, domain.Bases(result.Success()))
	assert.ElementsMatch(t, rejected, domain.Bases(result.Failed()))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, append(built, rejected...))
}

func TestRunner_PartitionError(t *testing.T) {
	deps := setup(t)
	u := updater.NewLocal(repo, deps.builder, deps.publisher, deps.logger)
	runner := updater.NewRunner(deps.logger, deps.metrics, nil)

	_, err := runner.Run(context.Background(), u, []domain.Package{pkg("a"), pkg("a")}, domain.UpdateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicatePackage)
}
