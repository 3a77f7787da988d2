package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/middlewares"
	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

// OrganizationServicer defines the interface the organization handlers need.
type OrganizationServicer interface {
	Create(ctx context.Context, userID int64, name string) (*models.OrganizationDB, error)
	List(ctx context.Context, userID int64, skip, limit int) ([]models.OrganizationDB, error)
	Get(ctx context.Context, userID, id int64) (*models.OrganizationDB, error)
	Update(ctx context.Context, userID, id int64, name string) (*models.OrganizationDB, error)
	Delete(ctx context.Context, userID, id int64) (*models.OrganizationDB, error)
	ListAppointments(ctx context.Context, userID, id int64) ([]models.AppointmentDB, error)
}

// OrganizationRequest represents the JSON body for creating or updating an organization
// swagger:model OrganizationRequest
type OrganizationRequest struct {
	// Organization name
	// required: true
	// example: Acme
	Name string `json:"name"`
}

// OrganizationErrorResponse represents an error response for organization operations
// swagger:model OrganizationErrorResponse
type OrganizationErrorResponse struct {
	// Error message
	// example: Organization not found
	Error string `json:"error"`
}

func writeOrganizationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrOrganizationNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(OrganizationErrorResponse{Error: "Organization not found"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(OrganizationErrorResponse{Error: "Internal server error"})
	}
}

// NewCreateOrganizationHandler returns an HTTP handler for creating an organization.
// @Summary Create organization
// @Description Creates an organization owned by the authenticated user. The owner cannot be overridden by the request body.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organizationRequest body handlers.OrganizationRequest true "Organization request"
// @Success 200 {object} models.OrganizationDB "Created organization"
// @Failure 422 {object} handlers.OrganizationErrorResponse "Missing name"
// @Router /organizations/ [post]
// @Security BearerAuth
func NewCreateOrganizationHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		var req OrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(OrganizationErrorResponse{Error: "name is required"})
			return
		}

		org, err := svc.Create(r.Context(), user.ID, req.Name)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(org)
	}
}

// NewListOrganizationsHandler returns an HTTP handler for listing owned organizations.
// @Summary List organizations
// @Description Lists the organizations owned by the authenticated user.
// @Tags organizations
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(10)
// @Success 200 {array} models.OrganizationDB "Owned organizations"
// @Router /organizations/ [get]
// @Security BearerAuth
func NewListOrganizationsHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		skip, limit := pagination(r)

		orgs, err := svc.List(r.Context(), user.ID, skip, limit)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(orgs)
	}
}

// NewGetOrganizationHandler returns an HTTP handler for reading one organization.
// @Summary Get organization
// @Description Returns an organization owned by the authenticated user. Another user's organization behaves like an absent one.
// @Tags organizations
// @Produce json
// @Param organizationID path int true "Organization ID"
// @Success 200 {object} models.OrganizationDB "Organization"
// @Failure 404 {object} handlers.OrganizationErrorResponse "Organization not found"
// @Router /organizations/{organizationID} [get]
// @Security BearerAuth
func NewGetOrganizationHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "organizationID")
		if !ok {
			writeOrganizationError(w, services.ErrOrganizationNotFound)
			return
		}

		org, err := svc.Get(r.Context(), user.ID, id)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(org)
	}
}

// NewUpdateOrganizationHandler returns an HTTP handler for renaming an organization.
// @Summary Update organization
// @Description Replaces the organization name and refreshes updated_at.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organizationID path int true "Organization ID"
// @Param organizationRequest body handlers.OrganizationRequest true "Organization request"
// @Success 200 {object} models.OrganizationDB "Updated organization"
// @Failure 404 {object} handlers.OrganizationErrorResponse "Organization not found"
// @Failure 422 {object} handlers.OrganizationErrorResponse "Missing name"
// @Router /organizations/{organizationID} [put]
// @Security BearerAuth
func NewUpdateOrganizationHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "organizationID")
		if !ok {
			writeOrganizationError(w, services.ErrOrganizationNotFound)
			return
		}

		var req OrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(OrganizationErrorResponse{Error: "name is required"})
			return
		}

		org, err := svc.Update(r.Context(), user.ID, id, req.Name)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(org)
	}
}

// NewDeleteOrganizationHandler returns an HTTP handler for deleting an organization.
// @Summary Delete organization
// @Description Deletes an organization owned by the authenticated user along with its appointments, returning its last state.
// @Tags organizations
// @Produce json
// @Param organizationID path int true "Organization ID"
// @Success 200 {object} models.OrganizationDB "Deleted organization"
// @Failure 404 {object} handlers.OrganizationErrorResponse "Organization not found"
// @Router /organizations/{organizationID} [delete]
// @Security BearerAuth
func NewDeleteOrganizationHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "organizationID")
		if !ok {
			writeOrganizationError(w, services.ErrOrganizationNotFound)
			return
		}

		org, err := svc.Delete(r.Context(), user.ID, id)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(org)
	}
}

// NewListOrganizationAppointmentsHandler returns an HTTP handler for listing
// the full calendar of an owned organization.
// @Summary List organization appointments
// @Description Lists every appointment of an organization owned by the authenticated user, regardless of which user booked it.
// @Tags organizations
// @Produce json
// @Param organizationID path int true "Organization ID"
// @Success 200 {array} models.AppointmentDB "Appointments"
// @Failure 404 {object} handlers.OrganizationErrorResponse "Organization not found"
// @Router /organizations/{organizationID}/appointments [get]
// @Security BearerAuth
func NewListOrganizationAppointmentsHandler(svc OrganizationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "organizationID")
		if !ok {
			writeOrganizationError(w, services.ErrOrganizationNotFound)
			return
		}

		apts, err := svc.ListAppointments(r.Context(), user.ID, id)
		if err != nil {
			writeOrganizationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apts)
	}
}
