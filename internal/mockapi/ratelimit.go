package mockapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

// RateLimitWrites throttles mutating calls per actor when the mock backend
// is served over real HTTP. A nil client disables the limit.
func RateLimitWrites(session *store.Session, rdb *redis.Client, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		actorID := "anonymous"
		if user, ok := session.User(); ok {
			actorID = user.String("user_id")
		}

		key := fmt.Sprintf("rate_limit:user:%s:%s", actorID, c.Request.Method)
		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", window).Result()
		if err != nil {
			// Redis being down never blocks the caller.
			c.Next()
			return
		}
		if !wasSet {
			ttl, _ := rdb.TTL(c.Request.Context(), key).Result()
			c.Header("Retry-After", fmt.Sprintf("%.0f", ttl.Seconds()))
			response.ResponseError(c, apperror.New(http.StatusTooManyRequests, "Çok fazla istek, lütfen bekleyin", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
