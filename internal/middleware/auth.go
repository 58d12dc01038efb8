package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shared-calendar/internal/model"
	"shared-calendar/pkg/response"
)

// UserIDHeader carries the signed-in user id set by the authenticating proxy.
const UserIDHeader = "X-User-ID"

const scopeKey = "scope"

// Auth requires a bearer token and a user id. The token is forwarded to the
// backing store on every call, which rejects it when invalid.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if !ok || userID == "" {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID, Token: token})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// SetScope stores sc on the context the way Auth does.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
