// Package tokens inspects bearer credentials without verifying them.
// The storefront never holds the signing secret, so the credential stays
// opaque for authorization purposes; the only thing the client peeks at is
// the exp claim, to avoid rehydrating a session the server will reject.
package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func Expired(tokenStr string, now time.Time) bool {
	parser := jwt.NewParser()
	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		// not a JWT: treat the credential as opaque and keep it
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now)
}
