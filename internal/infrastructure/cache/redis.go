package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const dialTimeout = 5 * time.Second

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Log      logrus.FieldLogger
}

// OpenRedis builds a client and fails unless the server answers a ping in time.
func OpenRedis(opts RedisOptions) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB})
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis %s: %w", opts.Addr, err)
	}
	if opts.Log != nil {
		opts.Log.WithFields(logrus.Fields{"addr": opts.Addr, "db": opts.DB}).Info("redis: connected")
	}
	return r, nil
}

// Ping is a health probe for an open client.
func Ping(r *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error { return r.Ping(ctx).Err() }
}
