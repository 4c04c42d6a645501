package middleware

import (
	"net/http"

	"github.com/AkhilKonduru1/Eventure/internal/session"
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
)

// contextClaimsKey is where Auth leaves the parsed session claims.
const contextClaimsKey = "sessionClaims"

// Auth validates the session cookie and puts the claims into the request
// context. Requests without a valid cookie are anonymous and get a 401.
func Auth(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := session.Parse(secret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the authenticated identity set by Auth.
func CurrentClaims(c *gin.Context) (*session.Claims, bool) {
	v, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*session.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
