package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
}

// TokenPairResponse represents a successful login response
// swagger:model TokenPairResponse
type TokenPairResponse struct {
	// Short-lived access token
	// example: ACCESS_TOKEN
	AccessToken string `json:"access_token"`

	// Long-lived refresh token
	// example: REFRESH_TOKEN
	RefreshToken string `json:"refresh_token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid credentials
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// The credentials arrive form-encoded (OAuth2 password flow shape).
// @Summary Login user
// @Description Authenticate with form-encoded username and password, returning an access/refresh token pair. Unknown usernames fail with 404, wrong passwords with 401.
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenPairResponse "Token pair"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Failure 404 {object} handlers.LoginErrorResponse "User not found"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid form body"})
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		access, refresh, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid credentials"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenPairResponse{
			AccessToken:  access,
			RefreshToken: refresh,
		})
	}
}
