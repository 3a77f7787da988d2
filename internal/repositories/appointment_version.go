package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// AppointmentVersionReadRepository reads the append-only version log
type AppointmentVersionReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentVersionReadRepository(db *sqlx.DB) *AppointmentVersionReadRepository {
	return &AppointmentVersionReadRepository{db: db}
}

// ListByAppointment returns all snapshots of an appointment, oldest first
func (r *AppointmentVersionReadRepository) ListByAppointment(ctx context.Context, appointmentID int64) ([]models.AppointmentVersionDB, error) {
	const query = `
		SELECT id, appointment_id, start_time, end_time, created_at
		FROM appointment_versions
		WHERE appointment_id = $1
		ORDER BY created_at, id
	`

	versions := make([]models.AppointmentVersionDB, 0)
	err := r.db.SelectContext(ctx, &versions, query, appointmentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{appointmentID},
		"result", len(versions),
		"error", err,
	)

	return versions, err
}

// AppointmentVersionWriteRepository appends to the version log.
// Versions are never updated or deleted.
type AppointmentVersionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAppointmentVersionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AppointmentVersionWriteRepository {
	return &AppointmentVersionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a snapshot of a superseded interval
func (r *AppointmentVersionWriteRepository) Save(ctx context.Context, appointmentID int64, start, end time.Time) error {
	const query = `
		INSERT INTO appointment_versions (appointment_id, start_time, end_time, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{appointmentID, start, end}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
