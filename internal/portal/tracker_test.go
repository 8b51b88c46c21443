package portal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader answers polls from a fixed script and repeats the last entry.
type scriptedReader struct {
	mu     sync.Mutex
	script []poll
	calls  int
}

type poll struct {
	status string
	err    error
}

func (r *scriptedReader) GetOrder(_ context.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	step := r.script[min(r.calls, len(r.script)-1)]
	r.calls++
	if step.err != nil {
		return queries.OrderResponse{}, step.err
	}
	return queries.OrderResponse{ID: orderID, Status: step.status}, nil
}

func (r *scriptedReader) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type updates struct {
	mu       sync.Mutex
	statuses []string
}

func (u *updates) record(o queries.OrderResponse) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.statuses = append(u.statuses, o.Status)
}

func (u *updates) get() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.statuses...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewTracker(t *testing.T) {
	_, err := portal.NewTracker(nil, kernel.NewUUID(), 0, func(queries.OrderResponse) {}, discardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = portal.NewTracker(&scriptedReader{}, kernel.UUID{}, 0, func(queries.OrderResponse) {}, discardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = portal.NewTracker(&scriptedReader{}, kernel.NewUUID(), 0, nil, discardLogger())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTracker_StopsOnTerminalStatus(t *testing.T) {
	reader := &scriptedReader{script: []poll{{status: "delivered"}}}
	seen := &updates{}
	tracker, err := portal.NewTracker(reader, kernel.NewUUID(), time.Second, seen.record, discardLogger())
	require.NoError(t, err)

	tracker.Start(t.Context())

	select {
	case <-tracker.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("tracker did not stop after a terminal status")
	}
	assert.Equal(t, []string{"delivered"}, seen.get())

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, 1, reader.Calls())
}

func TestTracker_KeepsPollingThroughFailures(t *testing.T) {
	reader := &scriptedReader{script: []poll{
		{err: errors.New("connection reset")},
		{status: "picked_up"},
		{status: "cancelled"},
	}}
	seen := &updates{}
	tracker, err := portal.NewTracker(reader, kernel.NewUUID(), time.Second, seen.record, discardLogger())
	require.NoError(t, err)

	tracker.Start(t.Context())
	t.Cleanup(tracker.Stop)

	select {
	case <-tracker.Done():
	case <-time.After(6 * time.Second):
		t.Fatal("tracker did not reach the terminal status")
	}
	assert.Equal(t, []string{"picked_up", "cancelled"}, seen.get())
}

func TestTracker_Stop(t *testing.T) {
	reader := &scriptedReader{script: []poll{{status: "pending"}}}
	seen := &updates{}
	tracker, err := portal.NewTracker(reader, kernel.NewUUID(), time.Second, seen.record, discardLogger())
	require.NoError(t, err)

	tracker.Start(t.Context())
	require.Eventually(t, func() bool { return reader.Calls() >= 1 }, 2*time.Second, 10*time.Millisecond)

	tracker.Stop()
	tracker.Stop()
	calls := reader.Calls()

	time.Sleep(2500 * time.Millisecond)
	assert.Equal(t, calls, reader.Calls())
	select {
	case <-tracker.Done():
	default:
		t.Fatal("Done is not closed after Stop")
	}
}

func TestTracker_StopsWhenContextIsCancelled(t *testing.T) {
	reader := &scriptedReader{script: []poll{{status: "accepted"}}}
	ctx, cancel := context.WithCancel(t.Context())
	tracker, err := portal.NewTracker(reader, kernel.NewUUID(), time.Second, func(queries.OrderResponse) {}, discardLogger())
	require.NoError(t, err)

	tracker.Start(ctx)
	require.Eventually(t, func() bool { return reader.Calls() >= 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-tracker.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("tracker kept running after its context was cancelled")
	}
}
