package repositories

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the ledger stream store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient creates a client for the Redis instance holding the ledger
// stream.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
