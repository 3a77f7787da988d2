package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingAuthHeader = errors.New("authorization header missing")
)

// JWT issues and validates the access/refresh token pair.
// Access and refresh tokens are signed with distinct secrets and lifetimes.
type JWT struct {
	AccessSecret  string        // Secret key for signing access tokens
	RefreshSecret string        // Secret key for signing refresh tokens
	AccessExp     time.Duration // Access token lifetime
	RefreshExp    time.Duration // Refresh token lifetime
}

// New creates a new JWT instance
func New(accessSecret, refreshSecret string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessExp:     accessExp,
		RefreshExp:    refreshExp,
	}
}

// GenerateAccessToken creates a short-lived access token carrying the username as subject
func (j *JWT) GenerateAccessToken(ctx context.Context, username string) (string, error) {
	return generate(username, j.AccessSecret, j.AccessExp)
}

// GenerateRefreshToken creates a long-lived refresh token carrying the username as subject
func (j *JWT) GenerateRefreshToken(ctx context.Context, username string) (string, error) {
	return generate(username, j.RefreshSecret, j.RefreshExp)
}

func generate(username, secret string, exp time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetAccessSubject parses an access token and returns its subject (username) if valid
func (j *JWT) GetAccessSubject(ctx context.Context, tokenString string) (string, error) {
	return parseSubject(tokenString, j.AccessSecret)
}

// GetRefreshSubject parses a refresh token and returns its subject (username) if valid
func (j *JWT) GetRefreshSubject(ctx context.Context, tokenString string) (string, error) {
	return parseSubject(tokenString, j.RefreshSecret)
}

func parseSubject(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
