package middleware

import (
	"fmt"
	"net/http"
	"time"

	"MindHavenGo/config"

	"github.com/gin-gonic/gin"
)

// RateLimit 基于Redis计数器的限流中间件，按客户端IP计数。
// 认证接口用它区分出 rate_limited 这一类错误，客户端可提示稍后重试。
func RateLimit(scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())
		count, err := config.RedisClient.Incr(c, key).Result()
		if err != nil {
			// Redis故障时放行，不因限流组件阻断登录
			config.Logger.Errorw("限流计数失败", "error", err, "scope", scope)
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(c, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "请求过于频繁，请稍后再试",
				"error_code": "rate_limited",
			})
			return
		}

		c.Next()
	}
}
