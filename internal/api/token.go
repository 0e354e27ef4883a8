package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired does a best-effort local expiry check on the stored
// bearer token. The backend treats tokens as opaque from the client's
// point of view, but when one happens to be a JWT with an exp claim we
// can warn about a doomed call before making it. The signature is never
// verified; this is advisory only, the 401 path remains authoritative.
// ok is false when the token is not a parseable JWT or has no expiry.
func tokenExpired(token string) (expired, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, false
	}
	return time.Now().After(exp.Time), true
}
