package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	PingTO   time.Duration
}

// OpenRedis creates a client and verifies it with a ping.
func OpenRedis(ctx context.Context, opt RedisOptions) (*redis.Client, error) {
	if opt.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisPinger adapts a redis client to the readiness probe.
type RedisPinger struct {
	Client *redis.Client
}

func (p RedisPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
