// Package ratelimit は固定ウィンドウ方式のIP別レートリミットを提供します。
// カウンタはRedisに保持するため、複数インスタンスでも上限を共有できます。
package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"auth_backend/internal/shared/apperr"
)

// Limiter counts requests per client IP in fixed windows.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewLimiter はLimiterの新しいインスタンスを生成します。
// rdbがnilの場合、ミドルウェアは何もしません（Redisなし運用）。
func NewLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

// Middleware は上限を超えたリクエストを429のドメインエラーとして
// エラーミドルウェアに引き渡します。Redis障害時は制限せず通します。
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil || l.limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("%s:%s", l.prefix, c.ClientIP())

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			// ウィンドウ開始時のみTTLを設定
			if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "key", key, "error", err)
			}
		}

		if count > int64(l.limit) {
			_ = c.Error(apperr.NewHTTP(http.StatusTooManyRequests, apperr.CodeTooManyRequests,
				"Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
