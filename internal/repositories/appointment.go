package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// AppointmentReadRepository handles appointment read operations
type AppointmentReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentReadRepository(db *sqlx.DB) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db}
}

// GetByIDAndUser returns the appointment owned by userID, or nil if absent
func (r *AppointmentReadRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.AppointmentDB, error) {
	const query = `
		SELECT id, start_time, end_time, organization_id, user_id, created_at, updated_at
		FROM appointments
		WHERE id = $1 AND user_id = $2
	`

	var apt models.AppointmentDB
	err := r.db.GetContext(ctx, &apt, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &apt, nil
}

// ListByUser returns the appointments owned by userID, oldest first
func (r *AppointmentReadRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.AppointmentDB, error) {
	const query = `
		SELECT id, start_time, end_time, organization_id, user_id, created_at, updated_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	apts := make([]models.AppointmentDB, 0)
	err := r.db.SelectContext(ctx, &apts, query, userID, skip, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skip, limit},
		"result", len(apts),
		"error", err,
	)

	return apts, err
}

// ListByOrganization returns the full calendar of an organization,
// regardless of which user booked each appointment
func (r *AppointmentReadRepository) ListByOrganization(ctx context.Context, organizationID int64) ([]models.AppointmentDB, error) {
	const query = `
		SELECT id, start_time, end_time, organization_id, user_id, created_at, updated_at
		FROM appointments
		WHERE organization_id = $1
		ORDER BY start_time
	`

	apts := make([]models.AppointmentDB, 0)
	err := r.db.SelectContext(ctx, &apts, query, organizationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{organizationID},
		"result", len(apts),
		"error", err,
	)

	return apts, err
}

// HasConflict reports whether the candidate half-open interval [start, end)
// collides with any appointment of the organization. The predicate is the
// SQL form of models.AppointmentDB.ConflictsWith; the exact-duplicate branch
// is subsumed by the general overlap test but kept as a distinct condition
// because duplicates are the documented conflict case.
// excludeID removes one appointment from consideration (the one being updated);
// pass 0 on create.
func (r *AppointmentReadRepository) HasConflict(ctx context.Context, organizationID int64, start, end time.Time, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE organization_id = $1
			  AND id <> $4
			  AND (
				(start_time = $2 AND end_time = $3)
				OR (start_time < $3 AND end_time > $2)
			  )
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, organizationID, start, end, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{organizationID, start, end, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// AppointmentWriteRepository handles appointment write operations
type AppointmentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAppointmentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new appointment stamped with the owning user
func (r *AppointmentWriteRepository) Save(ctx context.Context, start, end time.Time, organizationID, userID int64) (*models.AppointmentDB, error) {
	const query = `
		INSERT INTO appointments (start_time, end_time, organization_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, start_time, end_time, organization_id, user_id, created_at, updated_at
	`

	var apt models.AppointmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &apt, query, start, end, organizationID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{start, end, organizationID, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &apt, nil
}

// Update mutates the appointment in place and returns the new state.
// Returns nil if the appointment is not owned by userID.
func (r *AppointmentWriteRepository) Update(ctx context.Context, id, userID int64, start, end time.Time, organizationID int64) (*models.AppointmentDB, error) {
	const query = `
		UPDATE appointments
		SET start_time = $3, end_time = $4, organization_id = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, start_time, end_time, organization_id, user_id, created_at, updated_at
	`

	var apt models.AppointmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &apt, query, id, userID, start, end, organizationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, start, end, organizationID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &apt, nil
}

// Delete removes the appointment owned by userID and returns its last state.
// Hard delete: no version row is written.
func (r *AppointmentWriteRepository) Delete(ctx context.Context, id, userID int64) (*models.AppointmentDB, error) {
	const query = `
		DELETE FROM appointments
		WHERE id = $1 AND user_id = $2
		RETURNING id, start_time, end_time, organization_id, user_id, created_at, updated_at
	`

	var apt models.AppointmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &apt, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &apt, nil
}

func (r *AppointmentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}
