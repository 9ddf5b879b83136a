// Package auth provides password hashing and bearer-token issuance for
// client accounts. Tokens are self-contained HMAC-signed values so no
// server-side session storage is needed.
package auth

import "time"

// TokenStrategy issues and verifies bearer tokens carrying a client identity.
type TokenStrategy interface {
	IssueToken(clientID uint64) (string, error)
	ParseToken(token string) (uint64, error)
}

// Options configures token issuance.
type Options struct {
	// TTL is the token lifetime. Non-positive values fall back to a default.
	TTL time.Duration
}
