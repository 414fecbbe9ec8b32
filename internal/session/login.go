package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/auth"
)

// Login exchanges operator credentials for a Credential.
//
// It performs at most one call on a, which must be built on an
// unauthenticated connection. Blank input is refused locally with
// ErrValidationFailure; a refusal by the gateway, or a success answer
// without a token, is ErrAuthenticationFailure.
func Login(ctx context.Context, a adapter.AdminAdapter, username, secret string) (auth.Credential, error) {
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return auth.Credential{}, fmt.Errorf("%w: username and password are required", ErrValidationFailure)
	}

	token, err := a.Login(ctx, username, secret)
	if err != nil {
		return auth.Credential{}, mapError(err)
	}

	cred, err := auth.NewCredential(token)
	if err != nil {
		return auth.Credential{}, fmt.Errorf("%w: gateway returned no token: %w", ErrAuthenticationFailure, err)
	}

	return cred, nil
}
