package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skillport_backend/internal/config"
)

const sessionKey = "sessionID"

// SessionMiddleware 匿名会话：没有会话 cookie 时签发一个随机 uuid。
// 会话仅用于圈定结果存储的键空间，不承载任何账号语义。
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL / time.Second)

	return func(c *gin.Context) {
		sid, err := c.Cookie(cfg.CookieName)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(cfg.CookieName, sid, maxAge, "/", "", false, true)
		}

		c.Set(sessionKey, sid)
		c.Next()
	}
}

// SessionID 读取当前请求的会话标识
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
