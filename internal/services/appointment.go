package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// Error variables
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("appointment already exists")
	ErrInvalidInterval     = errors.New("end time must be after start time")
)

// Postgres error codes translated into ErrAppointmentConflict: the range
// exclusion constraint closes the check-then-insert race between requests.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// AppointmentReader defines read-only operations for appointments.
type AppointmentReader interface {
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.AppointmentDB, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.AppointmentDB, error)
	HasConflict(ctx context.Context, organizationID int64, start, end time.Time, excludeID int64) (bool, error)
}

// AppointmentWriter defines write operations for appointments.
type AppointmentWriter interface {
	Save(ctx context.Context, start, end time.Time, organizationID, userID int64) (*models.AppointmentDB, error)
	Update(ctx context.Context, id, userID int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error)
	Delete(ctx context.Context, id, userID int64) (*models.AppointmentDB, error)
}

// VersionReader reads the append-only version log of an appointment.
type VersionReader interface {
	ListByAppointment(ctx context.Context, appointmentID int64) ([]models.AppointmentVersionDB, error)
}

// VersionWriter appends to the version log.
type VersionWriter interface {
	Save(ctx context.Context, appointmentID int64, start, end time.Time) error
}

// OrganizationExistenceReader checks that a scheduling scope exists.
// Booking is organization-scoped, not owner-scoped, so this check is unscoped.
type OrganizationExistenceReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AppointmentService handles the appointment lifecycle: conflict-gated
// creation and update, versioned updates, hard deletes and Kafka publishing.
type AppointmentService struct {
	reader        AppointmentReader
	writer        AppointmentWriter
	versionReader VersionReader
	versionWriter VersionWriter
	orgs          OrganizationExistenceReader
	kafkaWriter   KafkaWriter
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(
	reader AppointmentReader,
	writer AppointmentWriter,
	versionReader VersionReader,
	versionWriter VersionWriter,
	orgs OrganizationExistenceReader,
	kafkaWriter KafkaWriter,
) *AppointmentService {
	return &AppointmentService{
		reader:        reader,
		writer:        writer,
		versionReader: versionReader,
		versionWriter: versionWriter,
		orgs:          orgs,
		kafkaWriter:   kafkaWriter,
	}
}

// publishEvent publishes an appointment mutation to Kafka. Best effort:
// a publish failure is logged and never fails the request.
func (s *AppointmentService) publishEvent(ctx context.Context, operation string, apt *models.AppointmentDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "appointment_id", apt.ID)
		return
	}

	event := models.AppointmentEvent{
		EventID:        uuid.NewString(),
		Timestamp:      time.Now().Unix(),
		Operation:      operation,
		AppointmentID:  apt.ID,
		OrganizationID: apt.OrganizationID,
		UserID:         apt.UserID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal appointment event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(apt.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish appointment event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("appointment event published", "event_id", event.EventID, "operation", operation)
	}
}

// checkConflict runs the overlap scan against the organization's calendar.
// excludeID removes the appointment being updated from consideration.
func (s *AppointmentService) checkConflict(ctx context.Context, organizationID int64, start, end time.Time, excludeID int64) error {
	conflict, err := s.reader.HasConflict(ctx, organizationID, start, end, excludeID)
	if err != nil {
		logger.Log.Errorw("failed to check appointment conflict", "organizationID", organizationID, "err", err)
		return err
	}
	if conflict {
		return ErrAppointmentConflict
	}
	return nil
}

// isConflictViolation reports whether err is a database constraint violation
// raised by the schema's overlap guards.
func isConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}

// Create validates the interval, gates it through the conflict detector
// and persists a new appointment stamped with the acting user.
func (s *AppointmentService) Create(ctx context.Context, userID int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	exists, err := s.orgs.Exists(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	if err := s.checkConflict(ctx, organizationID, start, end, 0); err != nil {
		return nil, err
	}

	apt, err := s.writer.Save(ctx, start, end, organizationID, userID)
	if err != nil {
		if isConflictViolation(err) {
			return nil, ErrAppointmentConflict
		}
		logger.Log.Errorw("failed to save appointment", "userID", userID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, "created", apt)
	return apt, nil
}

// List returns the appointments owned by userID.
func (s *AppointmentService) List(ctx context.Context, userID int64, skip, limit int) ([]models.AppointmentDB, error) {
	return s.reader.ListByUser(ctx, userID, skip, limit)
}

// Get returns a single appointment owned by userID.
func (s *AppointmentService) Get(ctx context.Context, userID, id int64) (*models.AppointmentDB, error) {
	apt, err := s.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}
	return apt, nil
}

// Update replaces the appointment's interval and organization after the
// conflict gate, snapshotting the pre-update interval into the version log.
// The snapshot and the mutation share the request transaction: both commit
// or neither does.
func (s *AppointmentService) Update(ctx context.Context, userID, id int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	existing, err := s.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	exists, err := s.orgs.Exists(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	if err := s.checkConflict(ctx, organizationID, start, end, existing.ID); err != nil {
		return nil, err
	}

	if err := s.versionWriter.Save(ctx, existing.ID, existing.Start, existing.End); err != nil {
		logger.Log.Errorw("failed to save appointment version", "id", existing.ID, "err", err)
		return nil, err
	}

	apt, err := s.writer.Update(ctx, id, userID, start, end, organizationID)
	if err != nil {
		if isConflictViolation(err) {
			return nil, ErrAppointmentConflict
		}
		logger.Log.Errorw("failed to update appointment", "id", id, "err", err)
		return nil, err
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}

	s.publishEvent(ctx, "updated", apt)
	return apt, nil
}

// Delete removes the appointment owned by userID and returns its last state.
// No version row is written on delete.
func (s *AppointmentService) Delete(ctx context.Context, userID, id int64) (*models.AppointmentDB, error) {
	apt, err := s.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete appointment", "id", id, "err", err)
		return nil, err
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}

	s.publishEvent(ctx, "deleted", apt)
	return apt, nil
}

// ListPreviousVersions returns the snapshots of an appointment owned by
// userID, ordered by creation time.
func (s *AppointmentService) ListPreviousVersions(ctx context.Context, userID, id int64) ([]models.AppointmentVersionDB, error) {
	apt, err := s.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}
	return s.versionReader.ListByAppointment(ctx, apt.ID)
}
