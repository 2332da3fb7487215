package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores items as plain string keys. The prefix keeps several
// installations apart on one server.
type Redis struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedis(client *redis.Client, prefix string, timeout time.Duration) *Redis {
	return &Redis{
		client:  client,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (r *Redis) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, classifyRedisError(err)
	}
	return value, true, nil
}

func (r *Redis) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return classifyRedisError(err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func classifyRedisError(err error) error {
	// a full maxmemory makes redis answer "OOM command not allowed ..."
	if strings.HasPrefix(err.Error(), "OOM") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
