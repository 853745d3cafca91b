package middleware

import (
	"net/http"

	"github.com/martinwilchesdev/backend-web-app/internal/util"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key holding the decoded session claims.
const identityKey = "currentUser"

// SessionMiddleware 在每个请求上尝试从 cookie 恢复会话。
// A missing or invalid cookie is the normal anonymous case: the request
// continues without an identity and no error is raised.
func SessionMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(util.SessionCookie)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			// tampered, malformed or expired: all treated as anonymous
			c.Next()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireAuth aborts with 401 when the session middleware attached no
// identity. Use it on routes that need a logged-in user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session claims attached by SessionMiddleware,
// or ok=false for anonymous requests.
func CurrentUser(c *gin.Context) (*util.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*util.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
