package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 3 * time.Second
	// claim traffic is tiny; a slow Redis must not stall registrations
	defaultIOTimeout = 500 * time.Millisecond
)

// Config holds the connection settings of the claim store.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	IOTimeout   time.Duration
}

func (c Config) options() *redis.Options {
	dial, io := c.DialTimeout, c.IOTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	if io <= 0 {
		io = defaultIOTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  dial,
		ReadTimeout:  io,
		WriteTimeout: io,
	}
}

// Connect opens a client and pings it once before handing it out.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: empty address")
	}
	opts := cfg.options()
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Pinger adapts a client to the readiness check.
func Pinger(client redis.Cmdable) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
