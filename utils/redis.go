// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"stellartours/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient is the dedicated client for session storage.
var SessionClient *redis.Client

// InitSessionClient initializes the Redis client used for session storage.
func InitSessionClient() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for session storage.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionClient()
	}
	return SessionClient
}
