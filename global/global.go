package global

// Shared handles for the rest of the backend.
import (
	"time"

	"github.com/go-redis/redis"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	DB      *gorm.DB
	RedisDB *redis.Client
	// FetchGroup deduplicates concurrent cold-cache rebuilds.
	FetchGroup singleflight.Group
	// Per-request timeout for short external fetches.
	FetchTimeout = 3 * time.Second
)
