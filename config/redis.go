package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance
var RedisClient *redis.Client

// InitRedis connects RedisClient when an address is configured and the
// server answers PING. Otherwise RedisClient stays nil and callers fall back
// to in-process caching.
func InitRedis(cfg RedisConfig) error {
	if cfg.Addr == "" {
		RedisClient = nil
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})
	if err := client.Ping(RedisCtx()).Err(); err != nil {
		_ = client.Close()
		RedisClient = nil
		return err
	}
	RedisClient = client
	return nil
}

func RedisCtx() context.Context {
	return context.Background()
}
