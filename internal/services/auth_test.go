package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenPair(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, nil, mockTokens)

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		lookupRuns   bool
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:       "successful registration",
			username:   "alice",
			password:   "password123",
			email:      "alice@example.com",
			lookupRuns: true,
		},
		{
			name:     "username not alphanumeric",
			username: "al ice!",
			password: "password123",
			email:    "alice@example.com",
			wantErr:  services.ErrInvalidUsername,
		},
		{
			name:     "password too short",
			username: "alice",
			password: "short",
			email:    "alice@example.com",
			wantErr:  services.ErrPasswordTooShort,
		},
		{
			name:     "email without at sign",
			username: "alice",
			password: "password123",
			email:    "alice.example.com",
			wantErr:  services.ErrInvalidEmail,
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "password123",
			email:        "bob@example.com",
			lookupRuns:   true,
			existingUser: &models.UserDB{ID: 1, Username: "bob"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:       "reader error",
			username:   "eve",
			password:   "password123",
			email:      "eve@example.com",
			lookupRuns: true,
			readerErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
		{
			name:       "writer error",
			username:   "carol",
			password:   "password123",
			email:      "carol@example.com",
			lookupRuns: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lookupRuns {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.lookupRuns && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.email).
					DoAndReturn(func(_ context.Context, username, passwordHash, email string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						return &models.UserDB{ID: 42, Username: username, Email: email, PasswordHash: passwordHash}, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenPair(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, nil, mockTokens)

	password := "supersecret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		username    string
		loginPass   string
		user        *models.UserDB
		readerErr   error
		tokensRun   bool
		accessErr   error
		wantAccess  string
		wantRefresh string
		wantErr     error
	}{
		{
			name:        "successful login",
			username:    "alice",
			loginPass:   password,
			user:        &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			tokensRun:   true,
			wantAccess:  "access-token",
			wantRefresh: "refresh-token",
		},
		{
			name:      "unknown user",
			username:  "ghost",
			loginPass: password,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "not-the-password",
			user:      &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation fails",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			tokensRun: true,
			accessErr: errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.tokensRun {
				mockTokens.EXPECT().
					GenerateAccessToken(gomock.Any(), tt.user.Username).
					Return(tt.wantAccess, tt.accessErr)
				if tt.accessErr == nil {
					mockTokens.EXPECT().
						GenerateRefreshToken(gomock.Any(), tt.user.Username).
						Return(tt.wantRefresh, nil)
				}
			}

			access, refresh, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAccess, access)
				assert.Equal(t, tt.wantRefresh, refresh)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenPair(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, nil, mockTokens)

	t.Run("valid refresh token", func(t *testing.T) {
		mockTokens.EXPECT().GetRefreshSubject(gomock.Any(), "refresh-token").Return("alice", nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{ID: 1, Username: "alice"}, nil)
		mockTokens.EXPECT().GenerateAccessToken(gomock.Any(), "alice").Return("new-access", nil)

		access, err := svc.Refresh(context.Background(), "refresh-token")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockTokens.EXPECT().GetRefreshSubject(gomock.Any(), "bad-token").Return("", errors.New("bad signature"))

		access, err := svc.Refresh(context.Background(), "bad-token")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Empty(t, access)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		mockTokens.EXPECT().GetRefreshSubject(gomock.Any(), "refresh-token").Return("ghost", nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		access, err := svc.Refresh(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Empty(t, access)
	})
}

func TestAuthService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockCache := services.NewMockUserCache(ctrl)
	mockTokens := services.NewMockTokenPair(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockCache, mockTokens)

	alice := &models.UserDB{ID: 1, Username: "alice"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockTokens.EXPECT().GetAccessSubject(gomock.Any(), "token").Return("alice", nil)
		mockCache.EXPECT().Get(gomock.Any(), "alice").Return(alice, nil)

		user, err := svc.Resolve(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("cache miss falls back to the database and populates the cache", func(t *testing.T) {
		mockTokens.EXPECT().GetAccessSubject(gomock.Any(), "token").Return("alice", nil)
		mockCache.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
		mockCache.EXPECT().Set(gomock.Any(), alice).Return(nil)

		user, err := svc.Resolve(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("cache set failure does not fail resolution", func(t *testing.T) {
		mockTokens.EXPECT().GetAccessSubject(gomock.Any(), "token").Return("alice", nil)
		mockCache.EXPECT().Get(gomock.Any(), "alice").Return(nil, errors.New("redis down"))
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
		mockCache.EXPECT().Set(gomock.Any(), alice).Return(errors.New("redis down"))

		user, err := svc.Resolve(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("invalid access token", func(t *testing.T) {
		mockTokens.EXPECT().GetAccessSubject(gomock.Any(), "bad").Return("", errors.New("expired"))

		user, err := svc.Resolve(context.Background(), "bad")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Nil(t, user)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		mockTokens.EXPECT().GetAccessSubject(gomock.Any(), "token").Return("ghost", nil)
		mockCache.EXPECT().Get(gomock.Any(), "ghost").Return(nil, nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		user, err := svc.Resolve(context.Background(), "token")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Nil(t, user)
	})
}
