package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/leadboard-backend/config"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/events"
	"github.com/redis/go-redis/v9"
)

// OpenPublisher returns the board event publisher for cfg and a close func.
// Without a Redis address events are dropped.
func OpenPublisher(ctx context.Context, cfg *config.RedisConfig) (events.Publisher, func() error, error) {
	if cfg.Addr == "" {
		return events.Nop{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return events.NewRedisPublisher(client, cfg.Channel), client.Close, nil
}
