package services

import (
	"context"
	"errors"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// ErrOrganizationNotFound is returned when an organization does not exist
// under the acting user's ownership scope. A foreign organization is
// indistinguishable from an absent one.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationReader defines read-only operations for organizations.
type OrganizationReader interface {
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.OrganizationDB, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.OrganizationDB, error)
}

// OrganizationWriter defines write operations for organizations.
type OrganizationWriter interface {
	Save(ctx context.Context, name string, userID int64) (*models.OrganizationDB, error)
	UpdateName(ctx context.Context, id, userID int64, name string) (*models.OrganizationDB, error)
	Delete(ctx context.Context, id, userID int64) (*models.OrganizationDB, error)
}

// CalendarReader lists the appointments of an organization across all bookers.
type CalendarReader interface {
	ListByOrganization(ctx context.Context, organizationID int64) ([]models.AppointmentDB, error)
}

// OrganizationService handles the organization lifecycle, scoped by ownership.
type OrganizationService struct {
	reader   OrganizationReader
	writer   OrganizationWriter
	calendar CalendarReader
}

// NewOrganizationService creates a new OrganizationService instance.
func NewOrganizationService(reader OrganizationReader, writer OrganizationWriter, calendar CalendarReader) *OrganizationService {
	return &OrganizationService{
		reader:   reader,
		writer:   writer,
		calendar: calendar,
	}
}

// Create persists a new organization owned by userID.
func (svc *OrganizationService) Create(ctx context.Context, userID int64, name string) (*models.OrganizationDB, error) {
	org, err := svc.writer.Save(ctx, name, userID)
	if err != nil {
		logger.Log.Errorw("failed to save organization", "userID", userID, "err", err)
		return nil, err
	}
	return org, nil
}

// List returns the organizations owned by userID.
func (svc *OrganizationService) List(ctx context.Context, userID int64, skip, limit int) ([]models.OrganizationDB, error) {
	return svc.reader.ListByUser(ctx, userID, skip, limit)
}

// Get returns a single organization owned by userID.
func (svc *OrganizationService) Get(ctx context.Context, userID, id int64) (*models.OrganizationDB, error) {
	org, err := svc.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

// Update replaces the organization name and refreshes updated_at.
func (svc *OrganizationService) Update(ctx context.Context, userID, id int64, name string) (*models.OrganizationDB, error) {
	org, err := svc.writer.UpdateName(ctx, id, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to update organization", "id", id, "userID", userID, "err", err)
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

// Delete removes the organization and, via the schema cascade, its appointments.
func (svc *OrganizationService) Delete(ctx context.Context, userID, id int64) (*models.OrganizationDB, error) {
	org, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete organization", "id", id, "userID", userID, "err", err)
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

// ListAppointments returns the full calendar of an organization owned by userID.
// Visibility of the calendar requires owning the organization; the entries
// themselves may belong to any booker.
func (svc *OrganizationService) ListAppointments(ctx context.Context, userID, id int64) ([]models.AppointmentDB, error) {
	org, err := svc.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return svc.calendar.ListByOrganization(ctx, org.ID)
}
