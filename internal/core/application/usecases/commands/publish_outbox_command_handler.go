package commands

import (
	"context"
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/ports"
)

// PublishOutboxCommandHandler publishes stored domain events in the order
// they occurred. It stops at the first publish failure; messages published
// before it are marked so they are not sent again, the rest wait for the
// next run.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
	now        func() time.Time
}

func NewPublishOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.MessagePublisher) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns how many messages were published.
func (h PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	messages, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			break
		}
		published = append(published, message.ID)
	}

	if len(published) > 0 {
		if err = outboxRepo.MarkPublished(ctx, published, h.now()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
