package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis. Tags are Redis sets holding the
// keys they cover. Errors are swallowed: a failing cache degrades to misses.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) ctx() context.Context {
	return context.Background()
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	b, err := s.client.Get(s.ctx(), s.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *RedisStore) Set(key string, value []byte, ttl time.Duration, tags []string) {
	ctx := s.ctx()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+key, value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, s.tagKey(tag), s.prefix+key)
		if ttl > 0 {
			pipe.Expire(ctx, s.tagKey(tag), ttl)
		}
	}
	_, _ = pipe.Exec(ctx)
}

func (s *RedisStore) Delete(keys ...string) {
	if len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	s.client.Del(s.ctx(), full...)
}

func (s *RedisStore) DeleteByTag(tag string) {
	ctx := s.ctx()
	members, err := s.client.SMembers(ctx, s.tagKey(tag)).Result()
	if err != nil {
		return
	}
	members = append(members, s.tagKey(tag))
	s.client.Del(ctx, members...)
}

func (s *RedisStore) tagKey(tag string) string {
	return s.prefix + "tag:" + tag
}
