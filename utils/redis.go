package utils

import (
	"context"
	"fmt"
	"time"

	"tourguide/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for token revocation.
var AuthCacheClient *redis.Client

// InitAuthCache connects the Redis client on REDIS_AUTH_DB.
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (auth): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// GetAuthCacheClient returns the auth Redis client, or nil before InitAuthCache succeeds.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
