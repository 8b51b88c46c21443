package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"meddelivery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxPublisher struct {
	mock.Mock
}

func (m *MockOutboxPublisher) Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type countingPublisher struct {
	calls atomic.Int32
}

func (p *countingPublisher) Handle(context.Context, commands.PublishOutboxCommand) (int, error) {
	p.calls.Add(1)
	return 0, nil
}

func TestOutboxRelayJob_Run_UsesBatchSize(t *testing.T) {
	handler := new(MockOutboxPublisher)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PublishOutboxCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(3, nil).Once()

	var logs bytes.Buffer
	job := NewOutboxRelayJob(handler, 25, slog.New(slog.NewTextHandler(&logs, nil)))

	job.run(t.Context())

	handler.AssertExpectations(t)
	assert.Contains(t, logs.String(), "Outbox messages published")
	assert.Contains(t, logs.String(), "count=3")
}

func TestOutboxRelayJob_Run_LogsFailure(t *testing.T) {
	handler := new(MockOutboxPublisher)
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("broker unreachable")).Once()

	var logs bytes.Buffer
	job := NewOutboxRelayJob(handler, 10, slog.New(slog.NewTextHandler(&logs, nil)))

	job.run(t.Context())

	assert.Contains(t, logs.String(), "Outbox relay job failed")
	assert.Contains(t, logs.String(), "broker unreachable")
	assert.Contains(t, logs.String(), "component=outbox_relay_job")
}

func TestOutboxRelayJob_Run_QuietWhenNothingPublished(t *testing.T) {
	handler := new(MockOutboxPublisher)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()

	var logs bytes.Buffer
	job := NewOutboxRelayJob(handler, 10, slog.New(slog.NewTextHandler(&logs, nil)))

	job.run(t.Context())

	assert.Empty(t, logs.String())
}

func TestNewOutboxRelayJob_DefaultsBatchSize(t *testing.T) {
	job := NewOutboxRelayJob(new(MockOutboxPublisher), 0, slog.Default())

	assert.Equal(t, commands.DefaultOutboxBatchSize, job.batchSize)
}

func TestJobManager_StartAndStop(t *testing.T) {
	handler := new(countingPublisher)
	manager := NewJobManager(handler, 10, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, manager.StartAll())
	require.Eventually(t, func() bool {
		return handler.calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
	manager.StopAll()

	stoppedAt := handler.calls.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, stoppedAt, handler.calls.Load())
}
