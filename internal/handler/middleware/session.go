package middleware

import (
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// Session guarantees a funnel session id, issuing a browser-session cookie when the request
// carries none or a malformed one.
func Session(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cookie.GetSessionID(c)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
			cookie.SetSessionCookie(c, cfg, sessionID)
		}
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ctxSessionIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return cookie.GetSessionID(c)
}
