package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/middlewares"
	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

// AppointmentServicer defines the interface the appointment handlers need.
type AppointmentServicer interface {
	Create(ctx context.Context, userID int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error)
	List(ctx context.Context, userID int64, skip, limit int) ([]models.AppointmentDB, error)
	Get(ctx context.Context, userID, id int64) (*models.AppointmentDB, error)
	Update(ctx context.Context, userID, id int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error)
	Delete(ctx context.Context, userID, id int64) (*models.AppointmentDB, error)
	ListPreviousVersions(ctx context.Context, userID, id int64) ([]models.AppointmentVersionDB, error)
}

// AppointmentRequest represents the JSON body for creating or updating an appointment
// swagger:model AppointmentRequest
type AppointmentRequest struct {
	// Interval start, inclusive
	// required: true
	// example: 2022-01-01T10:00:00Z
	Start time.Time `json:"start"`

	// Interval end, exclusive, strictly after start
	// required: true
	// example: 2022-01-01T11:00:00Z
	End time.Time `json:"end"`

	// Scheduling scope
	// required: true
	// example: 1
	OrganizationID int64 `json:"organization_id"`
}

// AppointmentErrorResponse represents an error response for appointment operations
// swagger:model AppointmentErrorResponse
type AppointmentErrorResponse struct {
	// Error message
	// example: Appointment already exists
	Error string `json:"error"`
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInterval):
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "End time must be after start time"})
	case errors.Is(err, services.ErrAppointmentConflict):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Appointment already exists"})
	case errors.Is(err, services.ErrAppointmentNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Appointment not found"})
	case errors.Is(err, services.ErrOrganizationNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Organization not found"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
	}
}

// NewCreateAppointmentHandler returns an HTTP handler for booking an appointment.
// @Summary Create appointment
// @Description Books a half-open interval [start, end) in an organization after conflict validation against the whole organization calendar.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentRequest body handlers.AppointmentRequest true "Appointment request"
// @Success 200 {object} models.AppointmentDB "Created appointment"
// @Failure 409 {object} handlers.AppointmentErrorResponse "Appointment already exists"
// @Failure 422 {object} handlers.AppointmentErrorResponse "End not after start"
// @Router /appointments/ [post]
// @Security BearerAuth
func NewCreateAppointmentHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		var req AppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "invalid request body"})
			return
		}

		apt, err := svc.Create(r.Context(), user.ID, req.Start, req.End, req.OrganizationID)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apt)
	}
}

// NewListAppointmentsHandler returns an HTTP handler for listing owned appointments.
// @Summary List appointments
// @Description Lists the appointments owned by the authenticated user.
// @Tags appointments
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(10)
// @Success 200 {array} models.AppointmentDB "Owned appointments"
// @Router /appointments/ [get]
// @Security BearerAuth
func NewListAppointmentsHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())
		skip, limit := pagination(r)

		apts, err := svc.List(r.Context(), user.ID, skip, limit)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apts)
	}
}

// NewGetAppointmentHandler returns an HTTP handler for reading one appointment.
// @Summary Get appointment
// @Description Returns an appointment owned by the authenticated user. Another user's appointment behaves like an absent one.
// @Tags appointments
// @Produce json
// @Param appointmentID path int true "Appointment ID"
// @Success 200 {object} models.AppointmentDB "Appointment"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{appointmentID} [get]
// @Security BearerAuth
func NewGetAppointmentHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "appointmentID")
		if !ok {
			writeAppointmentError(w, services.ErrAppointmentNotFound)
			return
		}

		apt, err := svc.Get(r.Context(), user.ID, id)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apt)
	}
}

// NewUpdateAppointmentHandler returns an HTTP handler for rescheduling an appointment.
// @Summary Update appointment
// @Description Replaces the interval and organization after conflict validation. The pre-update interval is snapshotted into the version log in the same transaction.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path int true "Appointment ID"
// @Param appointmentRequest body handlers.AppointmentRequest true "Appointment request"
// @Success 200 {object} models.AppointmentDB "Updated appointment"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Failure 409 {object} handlers.AppointmentErrorResponse "Appointment already exists"
// @Router /appointments/{appointmentID} [put]
// @Security BearerAuth
func NewUpdateAppointmentHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "appointmentID")
		if !ok {
			writeAppointmentError(w, services.ErrAppointmentNotFound)
			return
		}

		var req AppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "invalid request body"})
			return
		}

		apt, err := svc.Update(r.Context(), user.ID, id, req.Start, req.End, req.OrganizationID)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apt)
	}
}

// NewDeleteAppointmentHandler returns an HTTP handler for deleting an appointment.
// @Summary Delete appointment
// @Description Hard-deletes an appointment owned by the authenticated user and returns its last state. No version row is written.
// @Tags appointments
// @Produce json
// @Param appointmentID path int true "Appointment ID"
// @Success 200 {object} models.AppointmentDB "Deleted appointment"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{appointmentID} [delete]
// @Security BearerAuth
func NewDeleteAppointmentHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "appointmentID")
		if !ok {
			writeAppointmentError(w, services.ErrAppointmentNotFound)
			return
		}

		apt, err := svc.Delete(r.Context(), user.ID, id)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apt)
	}
}

// NewListAppointmentVersionsHandler returns an HTTP handler for the version log.
// @Summary List previous appointment versions
// @Description Lists the immutable snapshots of an appointment's superseded intervals, oldest first.
// @Tags appointments
// @Produce json
// @Param appointmentID path int true "Appointment ID"
// @Success 200 {array} models.AppointmentVersionDB "Previous versions"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{appointmentID}/previous_versions [get]
// @Security BearerAuth
func NewListAppointmentVersionsHandler(svc AppointmentServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := pathID(r, "appointmentID")
		if !ok {
			writeAppointmentError(w, services.ErrAppointmentNotFound)
			return
		}

		versions, err := svc.ListPreviousVersions(r.Context(), user.ID, id)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(versions)
	}
}
