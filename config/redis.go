package config

import (
	"fmt"
	"time"

	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/log"

	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

// Redis keys for the translator cache layer.
const (
	// Cached listing of the most recent translation runs.
	CacheKeyRecentRuns = "translate:runs:recent"
)

const (
	// RecentRunsTTL keeps the history listing fresh while absorbing
	// bursts of reads; writes invalidate the key directly.
	RecentRunsTTL = 30 * time.Second
)

func initRedis() {
	RedisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.Redis.Addr,
		DB:           AppConfig.Redis.DB,
		Password:     AppConfig.Redis.Password,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  800 * time.Millisecond,
		WriteTimeout: 800 * time.Millisecond,
		PoolSize:     20,
		MinIdleConns: 5,
	})
	_, err := RedisClient.Ping().Result()
	if err != nil {
		log.L().Error("Redis connection failed ,got error:", zap.Error(err))
	}
	global.RedisDB = RedisClient
	fmt.Println("2. Redis DataBase connection success!")
}
