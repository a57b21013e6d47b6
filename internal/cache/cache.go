// cache - кэш результатов поиска пользователей.
// Ключ зависит от учётных данных, поэтому выдача одного пользователя
// не попадает другому.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/friends-gateway/internal/models"
)

const defaultPrefix = "friends:search:"

// SearchCache - минимальный контракт кэша поиска.
type SearchCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, key string) (models.SearchUsersResponse, bool, error)
	// Set сохраняет запись с TTL кэша.
	Set(ctx context.Context, key string, v models.SearchUsersResponse) error
	// Close закрывает клиент Redis.
	Close() error
}

// Key - ключ по заголовку Authorization и нормализованному запросу.
// Сам заголовок в Redis не попадает, только хэш.
func Key(authHeader, query string) string {
	sum := sha256.Sum256([]byte(authHeader + "\x00" + strings.ToLower(strings.TrimSpace(query))))
	return hex.EncodeToString(sum[:])
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой - используется "friends:search:".
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (SearchCache, error) {
	const op = "internal/cache/NewRedisCache"

	if prefix == "" {
		prefix = defaultPrefix
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) Get(ctx context.Context, key string) (models.SearchUsersResponse, bool, error) {
	const op = "internal/cache/Get"

	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.SearchUsersResponse{}, false, nil
	}
	if err != nil {
		return models.SearchUsersResponse{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var v models.SearchUsersResponse
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.SearchUsersResponse{}, false, fmt.Errorf("%s: decode: %w", op, err)
	}

	return v, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, v models.SearchUsersResponse) error {
	const op = "internal/cache/Set"

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	if err := c.rdb.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Nop - кэш выключен (пустой CACHE_REDIS_URL).
type Nop struct{}

func (Nop) Get(context.Context, string) (models.SearchUsersResponse, bool, error) {
	return models.SearchUsersResponse{}, false, nil
}

func (Nop) Set(context.Context, string, models.SearchUsersResponse) error { return nil }
func (Nop) Close() error                                                { return nil }
