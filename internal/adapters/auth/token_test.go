package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_IssueAndVerify(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("user-123", "u@example.com", true, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, email, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", accountID)
	assert.Equal(t, "u@example.com", email)
}

func TestJWTCodec_Claims(t *testing.T) {
	secret := "test-secret"
	issuer, _ := NewJWTCodec(secret)

	token, err := issuer.Issue("user-123", "u@example.com", true, time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.True(t, claims.RegistrationCompleted)
}

func TestJWTCodec_Verify_Errors(t *testing.T) {
	issuer, _ := NewJWTCodec("secret-a")
	_, verifier := NewJWTCodec("secret-b")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := issuer.Issue("user-1", "a@b.com", false, time.Hour)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				iss, _ := NewJWTCodec("secret-b")
				tok, err := iss.Issue("user-1", "a@b.com", false, -time.Minute)
				require.NoError(t, err)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := verifier.Verify(tt.token(t))
			require.Error(t, err)
		})
	}
}
