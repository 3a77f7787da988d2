package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/services"
)

// Refresher defines the interface that the token refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RefreshRequest represents the JSON body for a token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token issued at login
	// required: true
	// example: REFRESH_TOKEN
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse represents a successful token refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	// New short-lived access token
	// example: ACCESS_TOKEN
	AccessToken string `json:"access_token"`
}

// RefreshErrorResponse represents an error response for token refresh
// swagger:model RefreshErrorResponse
type RefreshErrorResponse struct {
	// Error message
	// example: invalid or expired token
	Error string `json:"error"`
}

// NewRefreshHandler returns an HTTP handler for exchanging a refresh token
// for a new access token.
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new access token.
// @Tags users
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh request"
// @Success 200 {object} handlers.RefreshResponse "New access token"
// @Failure 403 {object} handlers.RefreshErrorResponse "Invalid or expired refresh token"
// @Router /users/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "invalid request body"})
			return
		}

		access, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "invalid or expired token"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RefreshResponse{AccessToken: access})
	}
}
