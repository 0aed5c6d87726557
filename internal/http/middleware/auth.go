package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/shared/apperr"
)

const (
	ctxKeyUserID  = "auth_user_id"
	ctxKeyIsAdmin = "auth_is_admin"
)

// CurrentUser holds what the token tells us; handlers load the full row when
// they need more.
type CurrentUserInfo struct {
	ID      string
	IsAdmin bool
}

// Authenticate reads the JWT from the auth cookie (or a Bearer header for
// API clients) and stashes the identity in the request context. Anonymous
// requests pass through; RequireAuth does the gating.
func Authenticate(issuer *users.TokenIssuer, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie(cookieName)
		if raw == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				raw = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if raw == "" {
			c.Next()
			return
		}

		claims, err := issuer.Parse(raw)
		if err != nil {
			// expired or tampered token: continue anonymous, clear nothing
			c.Next()
			return
		}

		c.Set(ctxKeyUserID, claims.Subject)
		c.Set(ctxKeyIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (CurrentUserInfo, bool) {
	id, ok := c.Get(ctxKeyUserID)
	if !ok {
		return CurrentUserInfo{}, false
	}
	uid, _ := id.(string)
	if uid == "" {
		return CurrentUserInfo{}, false
	}
	admin, _ := c.Get(ctxKeyIsAdmin)
	isAdmin, _ := admin.(bool)
	return CurrentUserInfo{ID: uid, IsAdmin: isAdmin}, true
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Authentication required"))
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Authentication required"))
			return
		}
		if !u.IsAdmin {
			Fail(c, apperr.ForbiddenErr("Admin access required"))
			return
		}
		c.Next()
	}
}
