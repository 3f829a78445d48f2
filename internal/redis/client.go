// Package redis wraps the go-redis client used by the session store.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smkun/MarvelPowers/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	DB              int
	Password        string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single Redis instance. Redis connects
// lazily, so an unreachable endpoint surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		DB:              opts.DB,
		Password:        opts.Password,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL
func NewClientFromURL(url string) (Client, error) {
	if url == "" {
		return nil, errors.InvalidArgument("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
	}

	return redis.NewClient(redisOpts), nil
}
