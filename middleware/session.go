package middleware

import (
	"net/http"

	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware rejects requests without a valid session cookie.
// On success it attaches the caller's identity to the request context so
// handlers never reach into ambient session state.
func SessionAuthMiddleware(store utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(utils.SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":         "Unauthorized",
				"isAuthenticated": false,
			})
			return
		}

		session, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":         "Unauthorized",
				"isAuthenticated": false,
			})
			return
		}

		c.Set("sessionID", sessionID)
		c.Set("userID", session.UserID)
		c.Set("username", session.Username)
		c.Next()
	}
}

// OptionalSessionMiddleware attaches identity when a valid session cookie
// is present and lets the request through either way. Used by the chat
// endpoint, which serves guests.
func OptionalSessionMiddleware(store utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(utils.SessionCookieName)
		if err == nil && sessionID != "" {
			if session, err := store.Get(c.Request.Context(), sessionID); err == nil {
				c.Set("sessionID", sessionID)
				c.Set("userID", session.UserID)
				c.Set("username", session.Username)
			}
		}
		c.Next()
	}
}
