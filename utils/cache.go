// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wanderly/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth token hashes in Redis.
const AuthCachePrefix = "auth:"

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// FeedClient carries live-feed pub/sub traffic between instances.
	FeedClient *redis.Client
)

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitFeedClient initializes the Redis client used for feed pub/sub.
func InitFeedClient() {
	FeedClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFeedDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := FeedClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Feed): %v", err)
	}
}

// GetFeedClient returns the Redis client for feed pub/sub.
func GetFeedClient() *redis.Client {
	if FeedClient == nil {
		InitFeedClient()
	}
	return FeedClient
}
