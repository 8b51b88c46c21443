package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const DefaultSessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps what a portal must remember between runs: the bearer
// token of an actor and the customer's cart.
type SessionStore interface {
	SaveToken(ctx context.Context, actor kernel.Actor, token string) error
	LoadToken(ctx context.Context, actor kernel.Actor) (string, error)
	SaveCart(ctx context.Context, customerID kernel.UUID, c *cart.Cart) error
	// LoadCart returns an empty cart when none was saved.
	LoadCart(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
	Forget(ctx context.Context, actor kernel.Actor) error
}

var _ SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore stores tokens as strings and carts as JSON, both expiring
// ttl after the last write.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

type lineRecord struct {
	MedicineID   kernel.UUID     `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	PharmacyID   kernel.UUID     `json:"pharmacy_id"`
	PharmacyName string          `json:"pharmacy_name"`
}

func (s *RedisSessionStore) SaveToken(ctx context.Context, actor kernel.Actor, token string) error {
	if err := s.client.Set(ctx, tokenKey(actor), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) LoadToken(ctx context.Context, actor kernel.Actor) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(actor)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get token failed: %w", err)
	}
	return token, nil
}

func (s *RedisSessionStore) SaveCart(ctx context.Context, customerID kernel.UUID, c *cart.Cart) error {
	lines := c.Lines()
	if len(lines) == 0 {
		if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
			return fmt.Errorf("redis delete cart failed: %w", err)
		}
		return nil
	}

	records := make([]lineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, lineRecord{
			MedicineID:   l.MedicineID(),
			MedicineName: l.MedicineName(),
			UnitPrice:    l.UnitPrice(),
			Quantity:     l.Quantity(),
			PharmacyID:   l.PharmacyID(),
			PharmacyName: l.PharmacyName(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err = s.client.Set(ctx, cartKey(customerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) LoadCart(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart failed: %w", err)
	}

	var records []lineRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	lines := make([]cart.Line, 0, len(records))
	for _, r := range records {
		l, lineErr := cart.NewLine(r.MedicineID, r.MedicineName, r.UnitPrice, r.Quantity, r.PharmacyID, r.PharmacyName)
		if lineErr != nil {
			return nil, fmt.Errorf("restore cart line: %w", lineErr)
		}
		lines = append(lines, l)
	}
	return cart.RestoreCart(lines)
}

func (s *RedisSessionStore) Forget(ctx context.Context, actor kernel.Actor) error {
	if err := s.client.Del(ctx, tokenKey(actor), cartKey(actor.ID())).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

func tokenKey(actor kernel.Actor) string {
	return fmt.Sprintf("session:%s:%s", actor.Role(), actor.ID())
}

func cartKey(customerID kernel.UUID) string {
	return fmt.Sprintf("cart:%s", customerID)
}
