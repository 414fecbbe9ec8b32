package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-exchange-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrEmptySubject is returned when a token carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")

	// ErrEmptySessionID is returned when a token carries no "jti" claim.
	ErrEmptySessionID = errors.New("empty session id error")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for an admin session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the gateway that issued the token
//   - Subject   (sub): the operator username
//   - ID        (jti): the session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns ErrInvalidJWTParams if any parameter is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-exchange-admin", "alice", sessionID, time.Hour, "secret")
func GenerateJWTToken(issuer, username, sessionID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || sessionID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation includes:
//   - Signature verification with tokenSignKey (HS256 only)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) and ID (jti) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "go-exchange-admin")
//	if err != nil {
//	    // reject the call
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}
	if parsed.ID == "" {
		return models.Token{}, ErrEmptySessionID
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	return *parsed, nil
}
