package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService("", "podcast-api", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIssueAndValidate(t *testing.T) {
	svc, err := NewService("test-secret", "podcast-api", time.Hour)
	require.NoError(t, err)

	token, err := svc.IssueToken(42, true, 0)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsCreator)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "podcast-api", claims.Issuer)
}

func TestValidateTokenFailures(t *testing.T) {
	svc, err := NewService("test-secret", "podcast-api", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   func(t *testing.T) string { return "not-a-jwt" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other, err := NewService("other-secret", "podcast-api", time.Hour)
				require.NoError(t, err)
				tok, err := other.IssueToken(1, false, 0)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				other, err := NewService("test-secret", "someone-else", time.Hour)
				require.NoError(t, err)
				tok, err := other.IssueToken(1, false, 0)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := &Claims{
					UserID: 1,
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "podcast-api",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
					},
				}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				claims := &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "podcast-api"}}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "no user id",
			token: func(t *testing.T) string {
				tok, err := svc.IssueToken(0, false, 0)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDevAuth(t *testing.T) {
	svc, err := NewService("test-secret", "podcast-api", time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken("dev-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	svc.SetDevAuth(true, "dev-token", 7)
	claims, err := svc.ValidateToken("dev-token")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}
