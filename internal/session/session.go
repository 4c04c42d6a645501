package session

import (
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "eventure_session"

// Claims is the identity bound to a session cookie. A request either
// carries a valid token (authenticated) or it does not (anonymous);
// there are no other states.
type Claims struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserLocation string `json:"user_location"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the user, valid for ttl.
func Issue(secret string, user *models.User, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	now := time.Now()
	claims := &Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLocation: user.Location,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates a session token and returns its claims.
func Parse(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
