package handlers

import (
	"encoding/json"
	"net/http"

	"appointment-booking-api/internal/middlewares"
)

// NewMeHandler returns an HTTP handler for the current user.
// The auth middleware has already resolved the bearer token.
// @Summary Get current user
// @Description Returns the authenticated user, without the password.
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user"
// @Failure 403 {object} handlers.SignupErrorResponse "Bad or expired token"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
