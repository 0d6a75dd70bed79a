package distributed_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports/mocks"
	"go.trai.ch/pacforge/internal/engine/distributed"
	"go.uber.org/mock/gomock"
)

func TestHeartbeat_Interval(t *testing.T) {
	h := distributed.NewHeartbeat(domain.Worker{}, nil, nil, time.Minute, nil)
	assert.Equal(t, 15*time.Second, h.Interval())
}

func TestHeartbeat_RegistersPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockWorkerRegistrar(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	worker := domain.NewWorker("http://w1:8080", "")

	var registrations atomic.Int32
	registrar.EXPECT().Register(gomock.Any(), worker).DoAndReturn(func(context.Context, domain.Worker) error {
		registrations.Add(1)
		return nil
	}).MinTimes(3)
	registrar.EXPECT().Unregister(gomock.Any(), worker).Return(nil).Times(1)

	h := distributed.NewHeartbeat(worker, registrar, logger, 200*time.Millisecond, nil)
	require.NoError(t, h.Start(context.Background()))
	require.NoError(t, h.Start(context.Background()), "second start is a no-op")

	require.Eventually(t, func() bool {
		return registrations.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, h.Stop(context.Background()))
	require.NoError(t, h.Stop(context.Background()), "second stop is a no-op")

	stopped := registrations.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, stopped, registrations.Load(), "no registration after stop")
}

func TestHeartbeat_RegisterFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockWorkerRegistrar(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	worker := domain.NewWorker("http://w1:8080", "")

	logged := make(chan error, 16)
	registrar.EXPECT().Register(gomock.Any(), worker).Return(errors.New("coordinator down")).MinTimes(1)
	registrar.EXPECT().Unregister(gomock.Any(), worker).Return(errors.New("coordinator down"))
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		select {
		case logged <- err:
		default:
		}
	}).MinTimes(1)
	logger.EXPECT().Warn(gomock.Any())

	h := distributed.NewHeartbeat(worker, registrar, logger, time.Second, nil)
	require.NoError(t, h.Start(context.Background()))

	select {
	case err := <-logged:
		assert.ErrorContains(t, err, "coordinator down")
	case <-time.After(2 * time.Second):
		t.Fatal("registration failure was not logged")
	}

	require.NoError(t, h.Stop(context.Background()))
}

func TestHeartbeat_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mocks.NewMockWorkerRegistrar(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	worker := domain.NewWorker("http://w1:8080", "")

	var registrations atomic.Int32
	registrar.EXPECT().Register(gomock.Any(), worker).DoAndReturn(func(context.Context, domain.Worker) error {
		registrations.Add(1)
		return nil
	}).AnyTimes()
	registrar.EXPECT().Unregister(gomock.Any(), worker).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	h := distributed.NewHeartbeat(worker, registrar, logger, 200*time.Millisecond, nil)
	require.NoError(t, h.Start(ctx))

	require.Eventually(t, func() bool { return registrations.Load() >= 1 }, time.Second, 10*time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	stopped := registrations.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, stopped, registrations.Load())

	require.NoError(t, h.Stop(context.Background()))
}
