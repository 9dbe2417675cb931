package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/germannapsix/Json-translate-app/global"

	"github.com/go-redis/redis"
)

// JSON value cache on top of redis.
func setCache[T any](ctx context.Context, key string, data T, ttl time.Duration) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return global.RedisDB.Set(key, b, ttl).Err()
}

func getCache[T any](ctx context.Context, key string) (T, error) {
	var data T
	result, err := global.RedisDB.Get(key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return data, fmt.Errorf("cache key %s not found", key)
		}
		return data, err
	}
	if err := json.Unmarshal(result, &data); err != nil {
		return data, err
	}
	return data, nil
}

func delCache(key string) {
	if global.RedisDB != nil {
		global.RedisDB.Del(key)
	}
}
