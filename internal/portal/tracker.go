package portal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const DefaultTrackInterval = 10 * time.Second

// OrderReader reads one order. *Client implements it.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderResponse, error)
}

var _ OrderReader = (*Client)(nil)

// Tracker polls one order and hands every observed snapshot to onUpdate.
// It polls once on Start, then on every interval tick, and stops by itself
// after observing a terminal status. Failed polls are logged and polling
// goes on. A tick that fires while a poll is still in flight is skipped.
type Tracker struct {
	reader   OrderReader
	orderID  kernel.UUID
	onUpdate func(queries.OrderResponse)
	interval time.Duration
	logger   *slog.Logger

	cron        *cron.Cron
	done        chan struct{}
	start       sync.Once
	stop        sync.Once
	pollTimeout time.Duration
}

// NewTracker uses DefaultTrackInterval when interval is not positive.
// Intervals under a second are rounded up to one second.
func NewTracker(
	reader OrderReader,
	orderID kernel.UUID,
	interval time.Duration,
	onUpdate func(queries.OrderResponse),
	logger *slog.Logger,
) (*Tracker, error) {
	if reader == nil {
		return nil, errs.NewValueIsRequiredError("reader")
	}
	if orderID.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if onUpdate == nil {
		return nil, errs.NewValueIsRequiredError("onUpdate")
	}
	if interval <= 0 {
		interval = DefaultTrackInterval
	}

	return &Tracker{
		reader:      reader,
		orderID:     orderID,
		onUpdate:    onUpdate,
		interval:    interval,
		logger:      logger.With("component", "order_tracker", "order_id", orderID.String()),
		cron:        cron.New(),
		done:        make(chan struct{}),
		pollTimeout: max(interval, time.Second),
	}, nil
}

// Start begins polling. Calling it again has no effect.
func (t *Tracker) Start(ctx context.Context) {
	t.start.Do(func() {
		job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).
			Then(cron.FuncJob(func() { t.poll(ctx) }))

		t.cron.Schedule(cron.Every(t.interval), job)
		t.cron.Start()
		go job.Run()

		t.logger.InfoContext(ctx, "Order tracking started", "interval", t.interval.String())
	})
}

// Stop ends polling. A poll already in flight is not cancelled, but its
// result is dropped. Safe to call more than once and from onUpdate.
func (t *Tracker) Stop() {
	t.stop.Do(func() {
		close(t.done)
		t.cron.Stop()
		t.logger.InfoContext(context.Background(), "Order tracking stopped")
	})
}

// Done is closed once the tracker has stopped.
func (t *Tracker) Done() <-chan struct{} {
	return t.done
}

func (t *Tracker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *Tracker) poll(ctx context.Context) {
	if t.stopped() {
		return
	}
	if ctx.Err() != nil {
		t.Stop()
		return
	}

	pollCtx, cancel := context.WithTimeout(ctx, t.pollTimeout)
	defer cancel()

	snapshot, err := t.reader.GetOrder(pollCtx, t.orderID)
	if t.stopped() {
		return
	}
	if err != nil {
		t.logger.ErrorContext(ctx, "Order poll failed", "error", err)
		return
	}

	t.onUpdate(snapshot)

	status, err := order.ParseStatus(snapshot.Status)
	if err != nil {
		t.logger.ErrorContext(ctx, "Order poll returned unknown status", "status", snapshot.Status)
		return
	}
	if status.IsTerminal() {
		t.logger.InfoContext(ctx, "Order reached terminal status", "status", snapshot.Status)
		t.Stop()
	}
}
