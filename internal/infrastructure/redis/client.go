package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DialConfig bounds the connection attempts made by NewClient.
type DialConfig struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultDialConfig retries for a few seconds, enough to ride out a redis
// container that starts alongside the client.
func DefaultDialConfig() DialConfig {
	return DialConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
	}
}

// NewClient creates a new Redis client and waits until it answers a ping.
func NewClient(ctx context.Context, redisURL string, dial DialConfig, logger zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = dial.InitialInterval
	b.MaxElapsedTime = dial.MaxElapsedTime

	attempt := 0
	ping := func() error {
		attempt++
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Debug().Err(err).Int("attempt", attempt).Str("addr", opts.Addr).Msg("redis not ready")
			return err
		}
		return nil
	}

	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
