// Package auth issues and validates bearer tokens for the HTTP API.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSecret     = errors.New("jwt secret is required")
)

// Claims carries the requester identity the services trust.
type Claims struct {
	UserID    uint `json:"user_id"`
	IsCreator bool `json:"is_creator"`

	jwt.RegisteredClaims
}

// Service issues and validates HS256 access tokens
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration

	devAuthEnabled bool
	devAuthToken   string
	devUserID      uint
}

// NewService creates a token service. ttl is the default token lifetime.
func NewService(secret, issuer string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// SetDevAuth configures a static development token that maps to userID.
func (s *Service) SetDevAuth(enabled bool, token string, userID uint) {
	s.devAuthEnabled = enabled
	s.devAuthToken = token
	s.devUserID = userID
}

// IssueToken signs a token for the user. A non-positive ttl uses the default.
func (s *Service) IssueToken(userID uint, isCreator bool, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		IsCreator: isCreator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature, issuer and expiry of a token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.devAuthEnabled && s.devAuthToken != "" &&
		subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.devAuthToken)) == 1 {
		return s.DevClaims(), nil
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// DevClaims returns fixed claims for development mode
func (s *Service) DevClaims() *Claims {
	now := time.Now()
	return &Claims{
		UserID:    s.devUserID,
		IsCreator: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.devUserID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(365 * 24 * time.Hour)),
		},
	}
}
