package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"appointment-booking-api/internal/middlewares"
	"appointment-booking-api/internal/models"
)

func TestMeHandler(t *testing.T) {
	t.Run("authenticated user", func(t *testing.T) {
		user := &models.UserDB{ID: 1, Username: "john", Email: "john@example.com"}

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()

		NewMeHandler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.UserDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "john", got.Username)
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rr := httptest.NewRecorder()

		NewMeHandler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
