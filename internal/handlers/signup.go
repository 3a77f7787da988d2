package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username, alphanumeric
	// required: true
	// example: johndoe
	Username string `json:"username"`

	// Password, at least 8 characters
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// example: password must be at least 8 characters
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Create new user
// @Description Creates a new user account. Username must be alphanumeric and unique, password at least 8 characters. The password is stored only as a hash and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 200 {object} models.UserDB "Created user, without password"
// @Failure 409 {object} handlers.SignupErrorResponse "Username already exists"
// @Failure 422 {object} handlers.SignupErrorResponse "Invalid username, password or email"
// @Router /users/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(SignupErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername),
				errors.Is(err, services.ErrPasswordTooShort),
				errors.Is(err, services.ErrInvalidEmail):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(SignupErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{Error: "Username already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
