package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB is the redis client used for publishing view invalidations. It stays
// nil when REDIS_ADDR is unset; publishers must tolerate that.
var RDB *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, view invalidations will only be logged")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Failed to connect to redis at %s: %v", addr, err)
		return
	}

	RDB = client
	log.Println("Redis connected successfully")
}
