package config

import (
	"os"
	"strconv"
)

type RedisConfig struct {
	DB       int
	Url      string
	Password string
}

func NewRedisConfig() *RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		db = 0
	}
	return &RedisConfig{
		DB:       db,
		Url:      addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}
