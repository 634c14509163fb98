package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis khởi tạo client Redis cho cache danh sách
func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnvDefault("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(Ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
