package config

import (
	"sync"
	"time"

	"github.com/germannapsix/Json-translate-app/models"

	"golang.org/x/time/rate"

	lru "github.com/hashicorp/golang-lru/v2"
)

const userCacheSize = 512

var (
	// LocalUserCache keeps recently authenticated users in memory so the
	// optional-auth middleware does not hit MySQL on every request.
	LocalUserCache *lru.Cache[string, models.Users]
	cacheOnce      sync.Once

	loginLimiters = sync.Map{} // client addr -> *rate.Limiter
)

func initUserCache(size int) {
	cacheOnce.Do(func() {
		cache, err := lru.New[string, models.Users](size)
		if err != nil {
			panic(err)
		}
		LocalUserCache = cache
	})
}

func ClearUserCache(username string) {
	if LocalUserCache != nil {
		LocalUserCache.Remove(username)
	}
}

// LoginLimiter returns the per-client limiter used by the auth endpoints:
// one attempt per second with a small burst.
func LoginLimiter(addr string) *rate.Limiter {
	if v, ok := loginLimiters.Load(addr); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Every(time.Second), 5)
	actual, _ := loginLimiters.LoadOrStore(addr, limiter)
	return actual.(*rate.Limiter)
}
