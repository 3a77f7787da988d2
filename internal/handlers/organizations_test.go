package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"appointment-booking-api/internal/models"
	"appointment-booking-api/internal/services"
)

func TestCreateOrganizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(7), "Acme Clinic").
			Return(&models.OrganizationDB{ID: 1, Name: "Acme Clinic", UserID: 7}, nil)

		body, _ := json.Marshal(OrganizationRequest{Name: "Acme Clinic"})
		req := withUser(httptest.NewRequest(http.MethodPost, "/organizations/", bytes.NewReader(body)), user)
		rr := httptest.NewRecorder()

		NewCreateOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var org models.OrganizationDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&org))
		assert.Equal(t, int64(7), org.UserID)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)

		body, _ := json.Marshal(OrganizationRequest{Name: "   "})
		req := withUser(httptest.NewRequest(http.MethodPost, "/organizations/", bytes.NewReader(body)), user)
		rr := httptest.NewRecorder()

		NewCreateOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)

		req := withUser(httptest.NewRequest(http.MethodPost, "/organizations/", bytes.NewReader([]byte("{not json"))), user)
		rr := httptest.NewRecorder()

		NewCreateOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestListOrganizationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}

	mockSvc := NewMockOrganizationServicer(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), int64(7), 0, 10).
		Return([]models.OrganizationDB{{ID: 1, Name: "A", UserID: 7}}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/organizations/", nil), user)
	rr := httptest.NewRecorder()

	NewListOrganizationsHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var orgs []models.OrganizationDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&orgs))
	assert.Len(t, orgs, 1)
}

func TestGetOrganizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), int64(7), int64(3)).
			Return(&models.OrganizationDB{ID: 3, Name: "A", UserID: 7}, nil)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodGet, "/organizations/3", nil), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewGetOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("foreign organization", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), int64(7), int64(3)).
			Return(nil, services.ErrOrganizationNotFound)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodGet, "/organizations/3", nil), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewGetOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp OrganizationErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Organization not found", resp.Error)
	})
}

func TestUpdateOrganizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(7), int64(3), "Renamed").
			Return(&models.OrganizationDB{ID: 3, Name: "Renamed", UserID: 7}, nil)

		body, _ := json.Marshal(OrganizationRequest{Name: "Renamed"})
		req := withChiParam(withUser(httptest.NewRequest(http.MethodPut, "/organizations/3", bytes.NewReader(body)), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewUpdateOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(7), int64(99), "Renamed").
			Return(nil, services.ErrOrganizationNotFound)

		body, _ := json.Marshal(OrganizationRequest{Name: "Renamed"})
		req := withChiParam(withUser(httptest.NewRequest(http.MethodPut, "/organizations/99", bytes.NewReader(body)), user), "organizationID", "99")
		rr := httptest.NewRecorder()

		NewUpdateOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteOrganizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}

	t.Run("returns last state", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(7), int64(3)).
			Return(&models.OrganizationDB{ID: 3, Name: "A", UserID: 7}, nil)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodDelete, "/organizations/3", nil), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewDeleteOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var org models.OrganizationDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&org))
		assert.Equal(t, int64(3), org.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(7), int64(99)).
			Return(nil, services.ErrOrganizationNotFound)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodDelete, "/organizations/99", nil), user), "organizationID", "99")
		rr := httptest.NewRecorder()

		NewDeleteOrganizationHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListOrganizationAppointmentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Username: "john"}
	start, end := testInterval()

	t.Run("owner sees entries from every booker", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			ListAppointments(gomock.Any(), int64(7), int64(3)).
			Return([]models.AppointmentDB{
				{ID: 1, Start: start, End: end, OrganizationID: 3, UserID: 7},
				{ID: 2, Start: end, End: end.Add(time.Hour), OrganizationID: 3, UserID: 9},
			}, nil)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodGet, "/organizations/3/appointments", nil), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewListOrganizationAppointmentsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var apts []models.AppointmentDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&apts))
		assert.Len(t, apts, 2)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		mockSvc := NewMockOrganizationServicer(ctrl)
		mockSvc.EXPECT().
			ListAppointments(gomock.Any(), int64(7), int64(3)).
			Return(nil, services.ErrOrganizationNotFound)

		req := withChiParam(withUser(httptest.NewRequest(http.MethodGet, "/organizations/3/appointments", nil), user), "organizationID", "3")
		rr := httptest.NewRecorder()

		NewListOrganizationAppointmentsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
