package jobs

import (
	"context"
	"log/slog"

	"meddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EverySecond is the relay schedule: cron with a seconds field.
const EverySecond = "* * * * * *"

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob relays stored domain events to the broker every second.
// A run that is still publishing when the next tick fires makes that tick
// a no-op.
type OutboxRelayJob struct {
	handler   outboxPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler outboxPublisher, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = commands.DefaultOutboxBatchSize
	}
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(EverySecond, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "published", published, "error", err)
		return
	}
	if published > 0 {
		j.logger.InfoContext(ctx, "Outbox messages published", "count", published)
	}
}
