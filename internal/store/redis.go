package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list key saved designs live under.
const DefaultRedisKey = "profilecraft:designs"

// ConnectRedis creates a client and verifies it with a ping.
func ConnectRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Info("redis connected", "addr", addr, "db", db)
	return client, nil
}

// Redis keeps saved designs in a Redis list.
type Redis struct {
	client redis.UniversalClient
	key    string
}

func NewRedis(client redis.UniversalClient, key string) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) List(ctx context.Context) ([]string, error) {
	items, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list saved designs: %w", err)
	}
	return items, nil
}

func (r *Redis) Append(ctx context.Context, serialized string) error {
	if err := r.client.RPush(ctx, r.key, serialized).Err(); err != nil {
		return fmt.Errorf("append saved design: %w", err)
	}
	return nil
}

// Remove deletes by position: the element is overwritten with a unique
// tombstone which is then removed, both inside one transaction.
func (r *Redis) Remove(ctx context.Context, index int) error {
	n, err := r.client.LLen(ctx, r.key).Result()
	if err != nil {
		return fmt.Errorf("remove saved design: %w", err)
	}
	if index < 0 || int64(index) >= n {
		return outOfRange(index, int(n))
	}

	tombstone := "profilecraft:removed:" + uuid.NewString()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LSet(ctx, r.key, int64(index), tombstone)
		pipe.LRem(ctx, r.key, 1, tombstone)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove saved design %d: %w", index, err)
	}
	return nil
}
