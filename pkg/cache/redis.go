package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix  = "dicebear:"
	redisCommandTimeout = 2 * time.Second
)

// Redis はアバターデータを Redis に保存するキャッシュです。
// []byte と string のみを保存でき、Get は []byte を返します。
// Redis に到達できない場合はキャッシュミスとして扱います。
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis は addr の Redis に接続するキャッシュを生成します。接続は最初のコマンド実行時に行われます。
func NewRedis(addr, prefix string) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
	}, nil
}

func (r *Redis) Get(key string) (any, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCommandTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Redis からの読み込みに失敗しました", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(key string, value any, d time.Duration) {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		slog.Warn("Redis に保存できない型です", "key", key, "type", fmt.Sprintf("%T", value))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisCommandTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, data, d).Err(); err != nil {
		slog.Warn("Redis への書き込みに失敗しました", "key", key, "error", err)
	}
}

// Close は Redis との接続を閉じます。
func (r *Redis) Close() error {
	return r.client.Close()
}
