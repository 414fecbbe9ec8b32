package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin session JWT.
//
// The "sub" claim holds the operator username and the "jti" claim holds the
// session identifier used by the gateway to enforce one active session per
// operator.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent to the client.
	SignedString string `json:"-"`
}

// Username returns the "sub" claim.
func (t *Token) Username() string {
	return t.Subject
}

// SessionID returns the "jti" claim.
func (t *Token) SessionID() string {
	return t.ID
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
