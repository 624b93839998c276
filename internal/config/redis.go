package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	Ctx   = context.Background()
	Redis *redis.Client
)

// InitRedis - no-op kalau REDIS_ADDR kosong (cache dimatikan)
func InitRedis() {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR kosong, cache FAQ dimatikan")
		return
	}

	db := GetEnvInt("REDIS_DB", 0)

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	})

	if err := Redis.Ping(Ctx).Err(); err != nil {
		log.Fatal("Redis tidak nyambung:", err)
	}

	log.Println("Redis connected (DB", db, ")")
}
