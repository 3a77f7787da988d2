package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrInvalidUsername  = errors.New("username must be alphanumeric")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrInvalidEmail     = errors.New("email is not valid")
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error)
}

// UserCache caches resolved users between requests.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// TokenPair issues and parses the access/refresh token pair.
type TokenPair interface {
	GenerateAccessToken(ctx context.Context, username string) (string, error)
	GenerateRefreshToken(ctx context.Context, username string) (string, error)
	GetAccessSubject(ctx context.Context, tokenString string) (string, error)
	GetRefreshSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthService handles signup, login, token refresh and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	tokens TokenPair
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, tokens TokenPair) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		tokens: tokens,
	}
}

// Register validates the signup data and creates a new user.
// The password is stored only as a bcrypt hash.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns an access/refresh token pair.
// An unknown username and a wrong password fail differently: the first
// is a not-found, the second a credential error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = svc.tokens.GenerateAccessToken(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	refreshToken, err = svc.tokens.GenerateRefreshToken(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	username, err := svc.tokens.GetRefreshSubject(ctx, refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user for refresh", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidToken
	}

	return svc.tokens.GenerateAccessToken(ctx, user.Username)
}

// Resolve validates an access token and returns the user it identifies.
// Resolved users are served from the cache when possible; users are
// immutable after signup, so a cached record never goes stale.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.UserDB, error) {
	username, err := svc.tokens.GetAccessSubject(ctx, tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if svc.cache != nil {
		if user, err := svc.cache.Get(ctx, username); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("failed to cache user", "username", username, "err", err)
		}
	}

	return user, nil
}
