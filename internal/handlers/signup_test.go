package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         SignupRequest
		rawBody      string // non-empty means send raw (invalid) JSON
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: SignupRequest{Username: "john", Password: "secret123", Email: "john@example.com"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret123", "john@example.com").
					Return(&models.UserDB{ID: 1, Username: "john", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "username taken",
			body: SignupRequest{Username: "alice", Password: "secret123", Email: "alice@example.com"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "secret123", "alice@example.com").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Username already exists",
		},
		{
			name: "short password",
			body: SignupRequest{Username: "bob", Password: "short", Email: "bob@example.com"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "short", "bob@example.com").
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "password must be at least 8 characters",
		},
		{
			name: "internal error",
			body: SignupRequest{Username: "carol", Password: "secret123", Email: "carol@example.com"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "secret123", "carol@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      "{not json",
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewSignupHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var resp SignupErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var user models.UserDB
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
				assert.Equal(t, tt.body.Username, user.Username)
			}
		})
	}
}

func TestSignupHandler_PasswordNeverInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "john", "secret123", "john@example.com").
		Return(&models.UserDB{ID: 1, Username: "john", Email: "john@example.com", PasswordHash: "$2a$10$hash"}, nil)

	body, _ := json.Marshal(SignupRequest{Username: "john", Password: "secret123", Email: "john@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	NewSignupHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
	assert.NotContains(t, rr.Body.String(), "password")
}
