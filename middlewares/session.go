package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

const sessionCookie = "session_token"

// SessionMiddleware resolves the caller's session from the session cookie or
// the X-Session-Token header, creating a fresh seeded session when neither
// yields a live one. The session is stored on the request context.
func SessionMiddleware(manager *session.Manager, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := resolve(c, manager); sess != nil {
			c.Set(session.ContextKey, sess)
			c.Next()
			return
		}

		sess, err := manager.Create()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			c.Abort()
			return
		}

		token, err := utils.GenerateSessionToken(sess.ID, ttl)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			c.Abort()
			return
		}

		c.SetCookie(sessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
		c.Header("X-Session-Token", token)

		c.Set(session.ContextKey, sess)
		c.Next()
	}
}

func resolve(c *gin.Context, manager *session.Manager) *session.Session {
	token := c.GetHeader("X-Session-Token")
	if token == "" {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			token = cookie
		}
	}
	if token == "" {
		return nil
	}

	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	sess, ok := manager.Get(claims.SessionID)
	if !ok {
		return nil
	}
	return sess
}
