package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "regular token", token: "abc123"},
		{name: "empty", token: "", wantErr: ErrEmptyCredential},
		{name: "whitespace only", token: "  \t", wantErr: ErrEmptyCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := NewCredential(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, cred.IsZero())
				return
			}
			require.NoError(t, err)
			assert.False(t, cred.IsZero())
			assert.Equal(t, tt.token, cred.Token())
		})
	}
}

func TestCredential_StringRedacts(t *testing.T) {
	cred, err := NewCredential("super-secret")
	require.NoError(t, err)

	assert.NotContains(t, cred.String(), "super-secret")
	assert.NotContains(t, fmt.Sprintf("%v", cred), "super-secret")
	assert.Equal(t, "Credential(<none>)", Credential{}.String())
}
