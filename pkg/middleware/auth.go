package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const TelegramIDKey = "telegram_id"

// AuthMiddleware pulls the caller's Telegram id out of the X-Telegram-ID
// header. Resolving it to a user row happens in the handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Telegram-ID")
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "telegram_id is required in 'X-Telegram-ID' header"})
			c.Abort()
			return
		}
		telegramID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid X-Telegram-ID header"})
			c.Abort()
			return
		}
		c.Set(TelegramIDKey, telegramID)
		c.Next()
	}
}
