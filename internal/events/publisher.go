package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ColumnCreated = "column.created"
	ColumnUpdated = "column.updated"
	ColumnDeleted = "column.deleted"
	LeadCreated   = "lead.created"
	LeadUpdated   = "lead.updated"
	LeadDeleted   = "lead.deleted"
)

// Event announces a committed change to the board.
type Event struct {
	Type string    `json:"type"`
	ID   int64     `json:"id"`
	At   time.Time `json:"at"`
}

// Publisher delivers board events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// RedisPublisher fans events out over a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	return nil
}

// Nop drops every event. Used when no Redis address is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
