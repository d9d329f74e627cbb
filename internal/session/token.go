package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired inspects the stored token's exp claim without verifying the
// signature (the server stays the authority; this only spares a doomed
// request). A missing or unparseable token reads as expired. A token that
// carries no exp claim is treated as non-expiring — a deliberate leniency,
// matching the server's own issuing behavior for long-lived sessions.
func (s *Store) IsTokenExpired() bool {
	token := s.GetToken()
	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return !time.Now().Before(exp.Time)
}
