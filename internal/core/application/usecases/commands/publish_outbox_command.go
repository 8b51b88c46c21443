package commands

import (
	"errors"
	"fmt"

	"meddelivery/internal/pkg/errs"
	"meddelivery/internal/pkg/guard"
)

const DefaultOutboxBatchSize = 100

var ErrPublishOutboxCommandIsNotConstructed = errors.New(
	"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
)

// PublishOutboxCommand relays up to BatchSize stored domain events.
type PublishOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	command := PublishOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return PublishOutboxCommand{}, err
	}

	return command, nil
}

func (c PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

func (c PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *PublishOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	c.batchSize = batchSize
	return nil
}
