package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/pkg/log"
)

const (
	HeaderRequestID   = "X-Request-ID"
	SessionCookieName = "timesheet_session"
	// SessionKey is the gin context key holding the session id.
	SessionKey = "session_id"

	sessionCookieMaxAge = 24 * 60 * 60
)

// RequestID tags every request with an id that the logger picks up from the context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, id))
		c.Next()
	}
}

// Session makes sure the browser carries a session cookie so chat history
// stays with one visitor.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, id, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the session id stored by Session, or "" when absent.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
