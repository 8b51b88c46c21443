// Package outboxrepo stores serialized domain events until the relay job has
// published them.
package outboxrepo

import (
	"time"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/ports"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(128);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox"
}

func fromPort(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:          message.ID.Google(),
		Name:        message.Name,
		AggregateID: message.AggregateID.Google(),
		Payload:     string(message.Payload),
		OccurredAt:  message.OccurredAt,
	}
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
